package handlers

// indexHTML is the single-page dashboard. All dynamic text arrives
// through the template; the page script only talks to the JSON
// endpoints afterwards.
const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    :root { --bg:#0b1020; --panel:#121a2d; --panel2:#17233a; --line:#2a3957; --text:#e8eefc; --muted:#9db1d7; --blue:#4f8cff; }
    * { box-sizing:border-box; }
    body { margin:0; font-family:Inter,system-ui,sans-serif; background:radial-gradient(circle at top,#1a2642 0%,#0b1020 50%); color:var(--text); }
    header { position:sticky; top:0; z-index:5; background:rgba(11,16,32,.85); border-bottom:1px solid var(--line); }
    .top { padding:12px 16px; display:flex; justify-content:space-between; gap:12px; flex-wrap:wrap; align-items:center; }
    .title { font-weight:800; }
    .sub { color:var(--muted); font-size:12px; display:flex; gap:8px; flex-wrap:wrap; }
    .chip { border:1px solid var(--line); border-radius:999px; padding:2px 10px; }
    .btn, button { border:0; border-radius:10px; color:white; background:var(--blue); padding:9px 12px; font-weight:700; cursor:pointer; text-decoration:none; }
    .btn.secondary, button.secondary { background:#32466f; }
    .layout { display:grid; grid-template-columns:300px 1fr; gap:12px; padding:12px; }
    @media (max-width:1000px) { .layout { grid-template-columns:1fr; } }
    .card { border:1px solid var(--line); border-radius:14px; background:linear-gradient(180deg,var(--panel2),var(--panel)); overflow:hidden; }
    .hd { border-bottom:1px solid var(--line); padding:10px 12px; font-weight:700; display:flex; justify-content:space-between; }
    .bd { padding:12px; }
    .stack { display:flex; flex-direction:column; gap:10px; }
    input, select { width:100%; border:1px solid var(--line); border-radius:10px; background:#0d1530; color:var(--text); padding:8px 10px; }
    .index { max-height:300px; overflow:auto; display:flex; flex-direction:column; gap:6px; }
    .idx-item { padding:7px 9px; border-radius:9px; border:1px solid transparent; background:#0e1731; color:var(--text); text-decoration:none; font-size:13px; }
    .idx-item:hover { border-color:#5a7fcb; }
    pre { margin:0; max-height:62vh; overflow:auto; background:#090f22; border-radius:10px; padding:12px; font-size:12px; line-height:1.48; border:1px solid var(--line); }
    .mainpre { min-height:240px; }
    .diff-grid { display:grid; grid-template-columns:1fr 1fr; gap:10px; }
    @media (max-width:1000px) { .diff-grid { grid-template-columns:1fr; } }
    .line-del { background:rgba(255,107,107,.14); display:block; }
    .line-add { background:rgba(44,182,125,.14); display:block; }
    .muted { color:var(--muted); font-size:12px; }
    .warn { color:#ffb4b4; margin-bottom:8px; }
    .toolbar { display:flex; gap:8px; flex-wrap:wrap; }
  </style>
</head>
<body>
  <header>
    <div class="top">
      <div>
        <div class="title">{{.Title}}</div>
        <div class="sub">
          <span class="chip">Target: {{.Target}}</span>
          <span class="chip">Last fetch: {{.LastFetch}}</span>
          <span class="chip">Exit: {{.Exit}}</span>
        </div>
      </div>
      <div class="toolbar">
        <form method="post" action="/fetch" style="margin:0;"><button type="submit">Fetch config</button></form>
        <a class="btn secondary" href="/download">Download</a>
        <a class="btn secondary" href="/raw" target="_blank">Raw</a>
        <a class="btn secondary" href="/diff" target="_blank">Diff</a>
      </div>
    </div>
  </header>

  <div class="layout">
    <div class="stack">
      <div class="card">
        <div class="hd">Search</div>
        <div class="bd stack"><input id="q" placeholder="Search the current capture" /><div class="muted" id="hits">0 hits</div></div>
      </div>
      <div class="card">
        <div class="hd">Versions (server keeps {{.MaxVersions}})</div>
        <div class="bd stack">
          <select id="leftVersion"></select>
          <select id="rightVersion"></select>
          <button id="btnCompare" class="secondary">Compare</button>
          <div class="muted">Pick left/right for a side-by-side diff.</div>
        </div>
      </div>
      <div class="card">
        <div class="hd">Index <span id="idxMeta" class="muted"></span></div>
        <div class="bd index" id="index"></div>
      </div>
    </div>
    <div class="stack">
      <div class="card">
        <div class="hd">Current configuration</div>
        <div class="bd">{{if .Error}}<div class="warn">Error: {{.Error}}</div>{{end}}<pre class="mainpre" id="mainCode"></pre></div>
      </div>
      <div class="card">
        <div class="hd">Diff (side by side)</div>
        <div class="bd diff-grid">
          <div><div class="muted" id="leftMeta">Left</div><pre id="leftDiff"></pre></div>
          <div><div class="muted" id="rightMeta">Right</div><pre id="rightDiff"></pre></div>
        </div>
      </div>
    </div>
  </div>

<script>
const CONFIG_TEXT = {{.ConfigText}};
const VERSIONS = {{.Versions}};

const qEl = document.getElementById('q');
const hitsEl = document.getElementById('hits');
const mainCode = document.getElementById('mainCode');
const idxEl = document.getElementById('index');
const idxMeta = document.getElementById('idxMeta');
const leftSel = document.getElementById('leftVersion');
const rightSel = document.getElementById('rightVersion');
const btnCompare = document.getElementById('btnCompare');
const leftMeta = document.getElementById('leftMeta');
const rightMeta = document.getElementById('rightMeta');
const leftDiff = document.getElementById('leftDiff');
const rightDiff = document.getElementById('rightDiff');

function esc(s) { return (s || '').replaceAll('&','&amp;').replaceAll('<','&lt;').replaceAll('>','&gt;'); }
function renderMain(text) { mainCode.textContent = text || 'No capture yet. Hit Fetch config.'; }

function buildIndex(text) {
  const lines = (text || '').split('\n');
  const items = [];
  let pos = 0;
  for (let i = 0; i < lines.length; i++) {
    const line = lines[i];
    if (line.startsWith('# configuration file ')) items.push({label: line.replace('# configuration file ',''), pos: pos});
    if (/^\s*server\s*\{/.test(line)) items.push({label: 'server block (line ' + (i+1) + ')', pos: pos});
    pos += line.length + 1;
  }
  idxEl.innerHTML = '';
  idxMeta.textContent = items.length + ' entries';
  if (!items.length) { idxEl.innerHTML = '<div class="muted">No index available.</div>'; return; }
  for (const it of items) {
    const a = document.createElement('a');
    a.href = '#';
    a.className = 'idx-item';
    a.textContent = it.label;
    a.onclick = (ev) => {
      ev.preventDefault();
      const pre = mainCode.parentElement;
      const ratio = Math.max(0, Math.min(1, it.pos / Math.max(1, text.length)));
      pre.scrollTop = ratio * (pre.scrollHeight - pre.clientHeight);
    };
    idxEl.appendChild(a);
  }
}

function runSearch() {
  const q = qEl.value.trim();
  if (!q) { renderMain(CONFIG_TEXT); hitsEl.textContent = '0 hits'; return; }
  const lines = (CONFIG_TEXT || '').split('\n');
  let hits = 0;
  const marked = lines.map((line) => {
    const i = line.toLowerCase().indexOf(q.toLowerCase());
    if (i < 0) return esc(line);
    hits += 1;
    return esc(line.slice(0, i)) + '<mark>' + esc(line.slice(i, i + q.length)) + '</mark>' + esc(line.slice(i + q.length));
  }).join('\n');
  mainCode.innerHTML = marked;
  hitsEl.textContent = hits + ' hits';
}

function setupVersions() {
  leftSel.innerHTML = ''; rightSel.innerHTML = '';
  if (!VERSIONS.length) {
    const opt = '<option value="">No versions</option>';
    leftSel.innerHTML = opt; rightSel.innerHTML = opt;
    return;
  }
  for (const v of VERSIONS) {
    const label = '#' + v.id + ' • ' + v.ts_human + ' • exit=' + v.exit_code;
    leftSel.insertAdjacentHTML('beforeend', '<option value="' + v.id + '">' + esc(label) + '</option>');
    rightSel.insertAdjacentHTML('beforeend', '<option value="' + v.id + '">' + esc(label) + '</option>');
  }
  leftSel.selectedIndex = Math.min(1, leftSel.options.length - 1);
  rightSel.selectedIndex = 0;
}

function renderSideBySideDiff(leftText, rightText) {
  const left = (leftText || '').split('\n');
  const right = (rightText || '').split('\n');
  const max = Math.max(left.length, right.length);
  const lOut = []; const rOut = [];
  for (let i = 0; i < max; i++) {
    const l = left[i] ?? ''; const r = right[i] ?? '';
    const changed = l !== r;
    lOut.push(changed ? '<span class="line-del">' + esc(l) + '</span>' : esc(l));
    rOut.push(changed ? '<span class="line-add">' + esc(r) + '</span>' : esc(r));
  }
  leftDiff.innerHTML = lOut.join('\n');
  rightDiff.innerHTML = rOut.join('\n');
}

async function compareVersions() {
  const leftId = leftSel.value; const rightId = rightSel.value;
  if (!leftId || !rightId) return;
  const res = await fetch('/diff-json?left=' + encodeURIComponent(leftId) + '&right=' + encodeURIComponent(rightId), { cache: 'no-store' });
  if (!res.ok) { alert(await res.text()); return; }
  const data = await res.json();
  leftMeta.textContent = 'Left: #' + data.left.id + ' • ' + data.left.ts_human;
  rightMeta.textContent = 'Right: #' + data.right.id + ' • ' + data.right.ts_human;
  renderSideBySideDiff(data.left.text, data.right.text);
}

function watchEvents() {
  const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  try {
    const ws = new WebSocket(proto + location.host + '/ws/events');
    ws.onmessage = () => location.reload();
  } catch (e) {
    // no live updates without websocket support
  }
}

qEl.addEventListener('input', runSearch);
btnCompare.addEventListener('click', compareVersions);
renderMain(CONFIG_TEXT);
buildIndex(CONFIG_TEXT);
setupVersions();
if (VERSIONS.length >= 2) compareVersions();
watchEvents();
</script>
</body>
</html>
`
