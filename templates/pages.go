package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

var reportPage = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-[#F7F0E6] font-sans text-stone-800">
<div class="max-w-6xl mx-auto p-6">
  <h1 class="text-3xl font-black mb-4">{{.Title}}</h1>
  <div class="bg-white/90 rounded-3xl p-6 shadow-2xl mb-6">
    <div class="mb-4">
      <label class="block text-sm font-semibold mb-1">Qualification Match</label>
      <input id="matchNum" type="number" min="1" class="p-3 border rounded-md w-32">
      <button id="pickMatchBtn" class="bg-[#5D4037] text-white font-bold py-2 px-6 rounded-xl">Load Match</button>
    </div>
    <div class="mb-4">
      <label class="block text-sm font-semibold mb-1">Manual Alliance Pick (red 1-3, blue 1-3)</label>
      <span id="manualSlots">
        <input class="manual-team p-2 border rounded-md w-24" data-slot="red1">
        <input class="manual-team p-2 border rounded-md w-24" data-slot="red2">
        <input class="manual-team p-2 border rounded-md w-24" data-slot="red3">
        <input class="manual-team p-2 border rounded-md w-24" data-slot="blue1">
        <input class="manual-team p-2 border rounded-md w-24" data-slot="blue2">
        <input class="manual-team p-2 border rounded-md w-24" data-slot="blue3">
      </span>
      <button id="pickTeamsBtn" class="bg-[#5D4037] text-white font-bold py-2 px-6 rounded-xl">Load Teams</button>
    </div>
    <div id="selectionError" class="text-red-700 font-semibold"></div>
    <div id="missingWarning" class="text-amber-700 font-semibold"></div>
    <div id="prediction" class="text-stone-600"></div>
  </div>
  <nav id="tabs" class="flex gap-2 mb-4">
    {{range .Panels}}<button class="tab-btn bg-white/90 rounded-xl px-4 py-2 font-bold" data-tab="{{.Name}}">{{.Name}}</button>{{end}}
    <button class="tab-btn bg-white/90 rounded-xl px-4 py-2 font-bold" data-tab="Alliance Selection">Alliance Selection</button>
  </nav>
  {{range .Panels}}
  <section class="tab-panel hidden" data-tab="{{.Name}}">
    {{range .Figures}}<div class="bg-white/90 rounded-3xl p-4 shadow-2xl mb-4"><div id="fig-{{.}}"></div></div>{{end}}
  </section>
  {{end}}
  <section class="tab-panel hidden" data-tab="Alliance Selection">
    <div class="bg-white/90 rounded-3xl p-4 shadow-2xl overflow-x-auto"><table id="keyStats" class="text-sm"></table></div>
  </section>
</div>
<script>
function showTab(name) {
  document.querySelectorAll('.tab-panel').forEach(p => p.classList.toggle('hidden', p.dataset.tab !== name));
}
document.querySelectorAll('.tab-btn').forEach(b => b.addEventListener('click', () => showTab(b.dataset.tab)));
showTab(document.querySelector('.tab-btn').dataset.tab);

async function refreshReport() {
  const resp = await fetch('/api/report');
  const errEl = document.getElementById('selectionError');
  if (!resp.ok) { errEl.innerText = await resp.text(); return; }
  errEl.innerText = '';
  renderReport(await resp.json());
}

function renderReport(report) {
  const warn = document.getElementById('missingWarning');
  warn.innerText = (report.missing_teams && report.missing_teams.length)
    ? 'No scouting data for: ' + report.missing_teams.join(', ') + ' (showing zeros)' : '';

  const pred = document.getElementById('prediction');
  if (report.prediction) {
    const p = report.prediction;
    pred.innerText = 'Predicted: red ' + p.red_score.toFixed(1) + ' - blue ' + p.blue_score.toFixed(1) +
      ' (red win ' + Math.round(p.red_win_prob * 100) + '%)';
  } else {
    pred.innerText = '';
  }

  for (const [key, fig] of Object.entries(report.figures)) {
    const el = document.getElementById('fig-' + key);
    if (el) { Plotly.newPlot(el, fig.data, fig.layout, {responsive: true}); }
  }
  renderKeyStats(report.key_stats);
}

function renderKeyStats(stats) {
  const table = document.getElementById('keyStats');
  if (!stats || !stats.length) { table.innerHTML = ''; return; }
  const cols = Object.keys(stats[0]);
  let html = '<tr>' + cols.map(c => '<th class="px-2 py-1 text-left">' + c + '</th>').join('') + '</tr>';
  for (const row of stats) {
    html += '<tr>' + cols.map(c => {
      const v = row[c];
      return '<td class="px-2 py-1">' + (typeof v === 'number' ? +v.toFixed(2) : v) + '</td>';
    }).join('') + '</tr>';
  }
  table.innerHTML = html;
}

document.getElementById('pickMatchBtn').addEventListener('click', async () => {
  const n = document.getElementById('matchNum').value;
  const resp = await fetch('/api/select-match', {method: 'POST', headers: {'Content-Type': 'application/x-www-form-urlencoded'}, body: 'match_num=' + encodeURIComponent(n)});
  if (!resp.ok) { document.getElementById('selectionError').innerText = await resp.text(); return; }
  refreshReport();
});

document.getElementById('pickTeamsBtn').addEventListener('click', async () => {
  const params = new URLSearchParams();
  document.querySelectorAll('.manual-team').forEach(i => params.set(i.dataset.slot, i.value.trim()));
  const resp = await fetch('/api/select-teams', {method: 'POST', headers: {'Content-Type': 'application/x-www-form-urlencoded'}, body: params.toString()});
  if (!resp.ok) { document.getElementById('selectionError').innerText = await resp.text(); return; }
  refreshReport();
});

refreshReport();
</script>
</body>
</html>`))

// ReportPage is the dashboard shell. All panel content is fetched from
// /api/report client-side.
func ReportPage(data ReportPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return reportPage.Execute(w, data)
	})
}
