package server

// StyleSheetPath is where the toast stylesheet is served.
const StyleSheetPath = "/static/toast.css"

// defaultStyleSheet animates toasts in on insertion and out when the exit
// class is applied. The client reports animationend of the exit animation.
const defaultStyleSheet = `.toastify-container {
  position: fixed;
  top: 1rem;
  right: 1rem;
  z-index: 9999;
  display: flex;
  flex-direction: column;
  gap: 0.5rem;
  pointer-events: none;
}
.toastify {
  display: flex;
  align-items: flex-start;
  gap: 0.75rem;
  min-width: 16rem;
  max-width: 24rem;
  padding: 0.75rem 1rem;
  border-radius: 0.5rem;
  background: #fff;
  color: #1f2937;
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.15);
  font: 14px/1.4 system-ui, sans-serif;
  pointer-events: auto;
  cursor: pointer;
  animation: toastify-in 0.3s ease-out;
}
.toastify-exit {
  animation: toastify-out 0.3s ease-in forwards;
}
.toastify-title { font-weight: 600; }
.toastify-message { color: #4b5563; }
.toastify-icon { display: inline-flex; width: 1.25rem; height: 1.25rem; }
.toastify-icon--success { color: #16a34a; }
.toastify-icon--error { color: #dc2626; }
.toastify-icon--warning { color: #d97706; }
.toastify-icon--info { color: #2563eb; }
.toastify-icon--loading { color: #6b7280; }
.toastify-icon--loading svg { animation: toastify-spin 1s linear infinite; }
@keyframes toastify-in {
  from { opacity: 0; transform: translateX(100%); }
  to { opacity: 1; transform: translateX(0); }
}
@keyframes toastify-out {
  from { opacity: 1; transform: translateX(0); }
  to { opacity: 0; transform: translateX(100%); }
}
@keyframes toastify-spin {
  to { transform: rotate(360deg); }
}
`

// clientScript mirrors server frames into the browser DOM and reports
// clicks and exit animation ends back to the server.
const clientScript = `(function() {
  var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
  var ws;

  function find(key) {
    if (key === 'body') return document.body;
    if (key === 'surface') return document.querySelector('.toastify-container');
    return document.querySelector('[data-toast-id="' + key + '"]');
  }

  function parse(html) {
    var tpl = document.createElement('template');
    tpl.innerHTML = html;
    return tpl.content.firstElementChild;
  }

  function send(type, id) {
    if (ws && ws.readyState === 1) ws.send(JSON.stringify({type: type, id: id}));
  }

  function apply(f) {
    var el;
    switch (f.type) {
      case 'snapshot':
        el = find('surface');
        if (el) el.remove();
        if (f.html) document.body.appendChild(parse(f.html));
        break;
      case 'append':
        var parent = find(f.parent);
        el = find(f.target);
        if (el) el.remove();
        if (parent && f.html) parent.appendChild(parse(f.html));
        break;
      case 'remove':
        el = find(f.target);
        if (el) el.remove();
        break;
      case 'class-add':
        el = find(f.target);
        if (el) el.classList.add(f['class']);
        break;
      case 'class-remove':
        el = find(f.target);
        if (el) el.classList.remove(f['class']);
        break;
    }
  }

  document.addEventListener('click', function(e) {
    var el = e.target.closest && e.target.closest('.toastify');
    if (el) send('click', el.getAttribute('data-toast-id'));
  });

  document.addEventListener('animationend', function(e) {
    var el = e.target;
    if (el.classList && el.classList.contains('toastify-exit')) {
      send('animationend', el.getAttribute('data-toast-id'));
    }
  });

  function connect() {
    ws = new WebSocket(proto + '//' + location.host + '/ws');
    ws.onmessage = function(e) { apply(JSON.parse(e.data)); };
    ws.onclose = function() { setTimeout(connect, 1000); };
  }
  connect();
})();`
