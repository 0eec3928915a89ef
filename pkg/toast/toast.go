package toast

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/k3a/html2text"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/toastkit/pkg/dom"
)

// MinAutoDismiss is the floor applied to every auto-dismiss delay so the
// entry animation completes before the exit starts.
const MinAutoDismiss = 500 * time.Millisecond

// DataID is the data attribute carrying a toast's id.
const DataID = "toast-id"

// ClickFunc receives the click event and the toast element.
type ClickFunc func(ev dom.Event, el *dom.Element)

// Toastify holds per-call overrides of the stored defaults.
type Toastify struct {
	// Duration overrides the default duration (ms) when non-nil.
	Duration *int

	// OnClick is registered as a click listener on the toast element.
	OnClick ClickFunc

	// Style is merged over the default style for this toast only.
	Style map[string]string
}

// Options describes a single toast.
type Options struct {
	// Variant is matched case-insensitively; unknown values become "info".
	Variant string
	Title   string
	Message string

	// WithIcon defaults to true when nil.
	WithIcon *bool

	// HTML replaces the built content verbatim when non-empty.
	HTML string

	Toastify Toastify
}

// Bool returns a pointer to b, for Options.WithIcon.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to v, for Toastify.Duration and Partial.Duration.
func Int(v int) *int { return &v }

// Toaster owns a display surface in a document and the lifecycle of every
// toast shown on it.
type Toaster struct {
	doc      *dom.Document
	defaults *Store
	sched    Scheduler
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer

	mu   sync.Mutex
	live map[string]*instance
}

// Option configures a Toaster.
type Option func(*Toaster)

// WithDocument sets the document the display surface lives in.
// Default: dom.Global().
func WithDocument(doc *dom.Document) Option {
	return func(t *Toaster) { t.doc = doc }
}

// WithStore sets the defaults store. Default: the process-wide store.
func WithStore(s *Store) Option {
	return func(t *Toaster) { t.defaults = s }
}

// WithScheduler sets the auto-dismiss scheduler. Default: RealScheduler.
func WithScheduler(s Scheduler) Option {
	return func(t *Toaster) { t.sched = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Toaster) { t.logger = l }
}

// WithMetrics enables Prometheus collection.
func WithMetrics(m *Metrics) Option {
	return func(t *Toaster) { t.metrics = m }
}

// WithTracer sets the tracer. Default: the global provider's "toastkit" tracer.
func WithTracer(tr trace.Tracer) Option {
	return func(t *Toaster) { t.tracer = tr }
}

// New creates a Toaster.
func New(opts ...Option) *Toaster {
	t := &Toaster{
		live: make(map[string]*instance),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.doc == nil {
		t.doc = dom.Global()
	}
	if t.defaults == nil {
		t.defaults = defaultStore
	}
	if t.sched == nil {
		t.sched = RealScheduler
	}
	if t.logger == nil {
		t.logger = slog.Default().With("component", "toast")
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer("toastkit")
	}
	return t
}

var (
	defaultToaster     *Toaster
	defaultToasterOnce sync.Once
)

// Default returns the process-wide Toaster bound to dom.Global() and the
// process-wide defaults.
func Default() *Toaster {
	defaultToasterOnce.Do(func() {
		defaultToaster = New()
	})
	return defaultToaster
}

// Document returns the document the Toaster renders into.
func (t *Toaster) Document() *dom.Document {
	return t.doc
}

// Store returns the defaults store used by the Toaster.
func (t *Toaster) Store() *Store {
	return t.defaults
}

// surfaceMu serializes surface acquisition across every Toaster so the
// query and the creation happen as one step.
var surfaceMu sync.Mutex

// Surface returns the display surface, creating and attaching it to the
// document body on first use.
func (t *Toaster) Surface() *dom.Element {
	surfaceMu.Lock()
	defer surfaceMu.Unlock()

	if el := t.doc.QueryClass(ContainerClass); el != nil {
		return el
	}
	el := t.doc.CreateElement("div")
	el.ClassList().Add(ContainerClass)
	t.doc.Body().AppendChild(el)
	t.logger.Debug("display surface created")
	return el
}

// Show displays a toast and returns its dismiss handle.
func (t *Toaster) Show(opts Options) *Handle {
	return t.ShowContext(context.Background(), opts)
}

// ShowContext is Show with a parent context for tracing.
func (t *Toaster) ShowContext(ctx context.Context, opts Options) *Handle {
	_, span := t.tracer.Start(ctx, "toast.show")
	defer span.End()

	surface := t.Surface()

	variant := Normalize(opts.Variant)
	withIcon := opts.WithIcon == nil || *opts.WithIcon
	content := Build(Content{
		Variant:  opts.Variant,
		Title:    opts.Title,
		Message:  opts.Message,
		WithIcon: withIcon,
		HTML:     opts.HTML,
	})

	inst := &instance{
		id:      uuid.NewString(),
		variant: variant,
		toaster: t,
	}
	el := t.doc.CreateElement("div")
	el.ClassList().Add(ToastClass)
	el.SetData(DataID, inst.id)
	el.SetInnerHTML(content)
	inst.el = el

	defaults := t.defaults.Get()
	duration := defaults.Duration
	if opts.Toastify.Duration != nil {
		duration = *opts.Toastify.Duration
	}

	style := defaults.Style
	for k, v := range opts.Toastify.Style {
		style[k] = v
	}
	el.Style().SetAll(style)

	if onClick := opts.Toastify.OnClick; onClick != nil {
		el.AddEventListener(dom.EventClick, func(ev dom.Event) {
			onClick(ev, el)
		})
	}

	autoDismiss := variant != VariantLoading && duration != 0
	if autoDismiss {
		t.sched.AfterFunc(autoDismissDelay(duration), func() {
			inst.dismiss(TriggerTimer)
		})
	}

	t.mu.Lock()
	t.live[inst.id] = inst
	t.mu.Unlock()

	surface.AppendChild(el)
	t.metrics.recordShown(variant)

	span.SetAttributes(
		attribute.String("toast.id", inst.id),
		attribute.String("toast.variant", string(variant)),
		attribute.Int("toast.duration_ms", duration),
		attribute.Bool("toast.auto_dismiss", autoDismiss),
	)
	t.logger.Debug("toast shown",
		"id", inst.id,
		"variant", variant,
		"duration_ms", duration,
		"auto_dismiss", autoDismiss,
		"text", html2text.HTML2Text(content),
	)

	return &Handle{inst: inst}
}

// maxDelayMillis is the longest delay in milliseconds a time.Duration holds.
const maxDelayMillis = int64(math.MaxInt64 / time.Millisecond)

// autoDismissDelay converts ms to a delay of at least MinAutoDismiss.
// Durations past the time.Duration range saturate instead of wrapping.
func autoDismissDelay(ms int) time.Duration {
	if int64(ms) > maxDelayMillis {
		return time.Duration(math.MaxInt64)
	}
	return max(time.Duration(ms)*time.Millisecond, MinAutoDismiss)
}

// Handle returns the dismiss handle of a toast that has not been removed yet.
func (t *Toaster) Handle(id string) (*Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	inst, ok := t.live[id]
	if !ok {
		return nil, false
	}
	return &Handle{inst: inst}, true
}

// Active returns the number of toasts not yet removed.
func (t *Toaster) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

func (t *Toaster) forget(id string) {
	t.mu.Lock()
	delete(t.live, id)
	t.mu.Unlock()
}

// Handle dismisses one toast.
type Handle struct {
	inst *instance
}

// Dismiss starts the exit of the toast. Calls after the first are no-ops.
func (h *Handle) Dismiss() {
	if h == nil || h.inst == nil {
		return
	}
	h.inst.dismiss(TriggerManual)
}

// ID returns the toast id, also carried by the element's data-toast-id
// attribute.
func (h *Handle) ID() string {
	if h == nil || h.inst == nil {
		return ""
	}
	return h.inst.id
}

// instance is a single toast: created, displayed, exiting, removed.
type instance struct {
	id      string
	el      *dom.Element
	variant Variant
	exiting atomic.Bool
	toaster *Toaster
}

// dismiss marks the toast as exiting and applies the exit class. The
// element is detached on the next animationend signal.
func (in *instance) dismiss(trigger string) {
	if !in.exiting.CompareAndSwap(false, true) {
		return
	}
	t := in.toaster

	in.el.AddEventListener(dom.EventAnimationEnd, func(dom.Event) {
		detached := in.el.Remove()
		t.forget(in.id)
		t.metrics.recordRemoved()
		t.logger.Debug("toast removed", "id", in.id, "detached", detached)
	}, dom.ListenerOptions{Once: true})
	in.el.ClassList().Add(ExitClass)

	t.metrics.recordDismissed(trigger)
	t.logger.Debug("toast exiting", "id", in.id, "trigger", trigger)
}
