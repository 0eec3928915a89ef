package toast

import "context"

func (t *Toaster) variantShow(v Variant, title, message string, opts []Toastify) *Handle {
	o := Options{Variant: string(v), Title: title, Message: message}
	if len(opts) > 0 {
		o.Toastify = opts[0]
	}
	return t.Show(o)
}

// Success shows a success toast.
//
//	t.Success("Saved", "Your changes have been saved.")
func (t *Toaster) Success(title, message string, opts ...Toastify) *Handle {
	return t.variantShow(VariantSuccess, title, message, opts)
}

// Error shows an error toast.
func (t *Toaster) Error(title, message string, opts ...Toastify) *Handle {
	return t.variantShow(VariantError, title, message, opts)
}

// Warning shows a warning toast.
func (t *Toaster) Warning(title, message string, opts ...Toastify) *Handle {
	return t.variantShow(VariantWarning, title, message, opts)
}

// Info shows an info toast.
func (t *Toaster) Info(title, message string, opts ...Toastify) *Handle {
	return t.variantShow(VariantInfo, title, message, opts)
}

// Show displays a toast on the default Toaster.
func Show(opts Options) *Handle {
	return Default().Show(opts)
}

// ShowContext displays a toast on the default Toaster.
func ShowContext(ctx context.Context, opts Options) *Handle {
	return Default().ShowContext(ctx, opts)
}

// Success shows a success toast on the default Toaster.
//
//	toast.Success("Project deleted", "")
func Success(title, message string, opts ...Toastify) *Handle {
	return Default().Success(title, message, opts...)
}

// Error shows an error toast on the default Toaster.
//
//	toast.Error("Failed to delete project", err.Error())
func Error(title, message string, opts ...Toastify) *Handle {
	return Default().Error(title, message, opts...)
}

// Warning shows a warning toast on the default Toaster.
func Warning(title, message string, opts ...Toastify) *Handle {
	return Default().Warning(title, message, opts...)
}

// Info shows an info toast on the default Toaster.
func Info(title, message string, opts ...Toastify) *Handle {
	return Default().Info(title, message, opts...)
}
