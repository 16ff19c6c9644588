package srv

import (
	"html/template"
	"net/http"

	"github.com/sgolla/polar/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := pageTpl.Execute(w, struct {
		Title     string
		RefreshMS int64
	}{
		Title:     "Polar Climate Dashboard",
		RefreshMS: s.interval.Milliseconds(),
	})
	if err != nil {
		log.Erro.Printf("can't render dashboard page: %s", err.Error())
	}
}

var pageTpl = template.Must(template.New("dashboard").Parse(pageHTML))

// The page polls /api/readings and redraws everything client-side; charts
// are Plotly, same as the layout this dashboard is modeled on.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>
  body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; background: #E3EAF2; color: #212121; display: flex; }
  aside { width: 240px; min-height: 100vh; background: #1B2A41; color: #F3F6FB; padding: 24px 20px; box-sizing: border-box; }
  aside h2 { font-size: 1.1em; text-align: center; }
  aside p { font-size: 0.85em; text-align: center; color: #B0BEC5; }
  aside hr { border-color: #33475F; }
  aside h6 { margin: 16px 0 8px; color: #FF9800; font-size: 0.85em; }
  aside a { display: block; color: #64B5F6; font-size: 0.85em; margin: 6px 0; text-decoration: none; }
  main { flex: 1; padding: 24px; box-sizing: border-box; }
  .boxes { display: flex; gap: 16px; }
  .box { flex: 1; border-radius: 10px; padding: 18px; color: #fff; }
  .box .label { font-size: 0.9em; opacity: 0.9; }
  .box .value { font-size: 2em; font-weight: bold; margin: 6px 0; }
  .box .hint { font-size: 0.75em; opacity: 0.8; }
  .box.temp { background: linear-gradient(135deg, #1976D2, #7B1FA2); }
  .box.humi { background: linear-gradient(135deg, #00897B, #00ACC1); }
  .box.time { background: linear-gradient(135deg, #546E7A, #263238); }
  .box.time .value { font-size: 1.1em; font-family: monospace; color: #FF9800; }
  .card { background: #F3F6FB; border-radius: 10px; margin-top: 16px; padding: 16px; box-shadow: 0 1px 3px rgba(0,0,0,0.15); }
  .card h3 { margin: 0 0 10px; font-size: 1em; color: #1B2A41; }
  .charts { display: flex; gap: 16px; flex-wrap: wrap; }
  .charts .card { flex: 1; min-width: 320px; }
  table { width: 100%; border-collapse: collapse; font-size: 0.9em; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #CFD8DC; }
  th { color: #1976D2; }
</style>
</head>
<body>
<aside>
  <h2>❄️ Arctic Research Center</h2>
  <p>Live monitoring of simulated Arctic temperature and humidity.</p>
  <hr>
  <h6>📖 Resources:</h6>
  <a href="https://github.com/sgolla/polar" target="_blank">GitHub Repository</a>
  <a href="https://plotly.com/javascript/" target="_blank">Plotly.js Documentation</a>
  <a href="https://ntfy.sh" target="_blank">ntfy.sh</a>
</aside>
<main>
  <div class="boxes">
    <div class="box temp"><div class="label">🌡 Temperature</div><div class="value" id="temp">–</div><div class="hint">Live Arctic Temperature</div></div>
    <div class="box humi"><div class="label">💧 Humidity</div><div class="value" id="humi">–</div><div class="hint">Live Arctic Humidity</div></div>
    <div class="box time"><div class="label">🕒 Last Update</div><div class="value" id="stamp">–</div><div class="hint">Last Update Time</div></div>
  </div>

  <div class="card">
    <h3>Recent Climate Data Table</h3>
    <table>
      <thead><tr><th>Timestamp</th><th>Temperature (°C)</th><th>Humidity (%)</th></tr></thead>
      <tbody id="rows"></tbody>
    </table>
  </div>

  <div class="charts">
    <div class="card"><h3>Temperature Trend</h3><div id="tempChart"></div></div>
    <div class="card"><h3>Humidity Trend</h3><div id="humiChart"></div></div>
    <div class="card"><h3>Recent Temperature Distribution</h3><div id="tempHist"></div></div>
  </div>
</main>

<script>
const layout = (yTitle) => ({
  xaxis: { title: "Time" },
  yaxis: { title: yTitle },
  plot_bgcolor: "#F3F6FB",
  paper_bgcolor: "#F3F6FB",
  margin: { t: 10, r: 20 },
  height: 280,
});

function fmtStamp(ts) {
  return new Date(ts).toLocaleString("sv-SE");
}

async function refresh() {
  const resp = await fetch("/api/readings");
  const data = await resp.json();
  const readings = data.readings || [];
  if (readings.length === 0) return;

  const latest = readings[readings.length - 1];
  document.getElementById("temp").textContent = latest.temperature.toFixed(1) + " °C";
  document.getElementById("humi").textContent = latest.humidity.toFixed(1) + " %";
  document.getElementById("stamp").textContent = fmtStamp(latest.timestamp);

  document.getElementById("rows").innerHTML = readings
    .map(r => "<tr><td>" + fmtStamp(r.timestamp) + "</td><td>" + r.temperature.toFixed(1) + "</td><td>" + r.humidity.toFixed(1) + "</td></tr>")
    .join("");

  const stamps = readings.map(r => r.timestamp);

  Plotly.react("tempChart", [
    { x: stamps, y: readings.map(r => r.temperature), mode: "lines+markers", name: "Temperature",
      line: { color: "#1976D2", width: 4 }, marker: { color: "#64B5F6", size: 8 } },
    { x: stamps, y: data.temperature.trend, mode: "lines", name: "Trend",
      line: { color: "#D81B60", dash: "dot", width: 3 } },
  ], layout("Temperature (°C)"));

  Plotly.react("humiChart", [
    { x: stamps, y: readings.map(r => r.humidity), mode: "lines+markers", name: "Humidity",
      line: { color: "#00897B", width: 4 }, marker: { color: "#4DD0E1", size: 8, symbol: "diamond" } },
    { x: stamps, y: data.humidity.trend, mode: "lines", name: "Trend",
      line: { color: "#FFB300", dash: "dot", width: 3 } },
  ], layout("Humidity (%)"));

  Plotly.react("tempHist", [
    { x: readings.map(r => r.temperature), type: "histogram", nbinsx: 7,
      marker: { color: "#1976D2", line: { color: "#D81B60", width: 2 } }, opacity: 0.85 },
  ], layout("Frequency"));
}

refresh();
setInterval(refresh, {{.RefreshMS}});
</script>
</body>
</html>
`
