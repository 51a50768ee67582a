package view

// menuTemplate renders the sections of a MenuView. It is also pushed over the
// events socket as the body of a render message.
const menuTemplate = `{{define "menu"}}{{range .Sections}}
<section class="section-dia" data-dia="{{.Key}}">
  {{- if .Label}}
  <div class="dia-semana-row">
    <h2 class="dia-semana">{{.Label}}</h2>
    {{- if .IsToday}}<span class="dia-badge">` + dishBadge + `</span>{{end}}
  </div>
  {{- end}}
  <div class="cards-container">
    {{- range .Cards}}
    <article class="card{{if .DishOfDay}} prato-do-dia{{end}}" style="animation-delay: {{ms .AnimationDelay}}ms">
      {{- if .DishOfDay}}<span class="prato-badge">` + dishBadge + `</span>{{end}}
      <div class="emoji" aria-hidden="true">{{.Emoji}}</div>
      <div class="info">
        <div class="nome">{{.Name}}</div>
        <div class="tipo">{{.CategoryLabel}}</div>
        <div class="nutri">
          <div class="item">🔥 {{num .Calories}} kcal</div>
          <div class="item">💪 {{num .Protein}} g</div>
          <div class="item">🍞 {{num .Carbs}} g</div>
          <div class="item">🥑 {{num .Fat}} g</div>
        </div>
      </div>
    </article>
    {{- end}}
    {{- if .Placeholder}}
    <div class="aviso">{{.Placeholder}}</div>
    {{- end}}
  </div>
</section>
{{- end}}{{end}}`

const commentsTemplate = `{{define "comments"}}
<h2>Comentários</h2>
{{- if .Error}}
<p class="erro" role="alert">{{.Error}}</p>
{{- end}}
<form id="form-comentario" method="post" action="/v1/comments">
  <input type="hidden" name="tab" value="{{.TabID}}">
  <input type="hidden" name="voltar" value="{{.Query}}">
  <input name="nome" placeholder="Seu nome" value="{{.Draft.Author}}" required>
  <select name="nota">
    {{- range $n := ratings}}
    <option value="{{$n}}"{{if eq $n $.Draft.Rating}} selected{{end}}>{{$n}} ★</option>
    {{- end}}
  </select>
  <textarea name="comentario" placeholder="Deixe seu comentário" required>{{.Draft.Body}}</textarea>
  <button type="submit">Enviar</button>
</form>
<ul class="lista-comentarios">
  {{- range $i, $c := .Comments}}
  <li class="comentario">
    <strong>{{$c.Author}}</strong> <span class="estrelas">{{$c.Stars}}</span>
    <p>{{$c.Body}}</p>
    <small>{{shortDate $c.CreatedAt}}</small>
    {{- if $.Admin}}
    <form method="post" action="/v1/comments/{{$i}}/delete">
      <input type="hidden" name="tab" value="{{$.TabID}}">
      <input type="hidden" name="voltar" value="{{$.Query}}">
      <button type="submit" class="btn-excluir">Excluir</button>
    </form>
    {{- end}}
  </li>
  {{- else}}
  <li class="vazio">` + noComments + `</li>
  {{- end}}
</ul>
{{- if .Admin}}
<form method="post" action="/v1/admin/logout">
  <input type="hidden" name="tab" value="{{.TabID}}">
  <input type="hidden" name="voltar" value="{{.Query}}">
  <button type="submit">Sair do modo admin</button>
</form>
{{- else}}
<form id="form-admin" method="post" action="/v1/admin/login">
  <input type="hidden" name="tab" value="{{.TabID}}">
  <input type="hidden" name="voltar" value="{{.Query}}">
  <input type="password" name="senha" placeholder="Senha da nutricionista">
  <button type="submit">Entrar</button>
  {{- if .LoginError}}
  <span class="erro" role="alert">{{.LoginError}}</span>
  {{- end}}
</form>
{{- end}}
{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Cardápio Nutri Silva Jardim</title>
  <style>` + pageCSS + `</style>
</head>
<body class="{{if .Theme.Dark}}dark-mode{{end}}" data-tab="{{.TabID}}">
<header>
  <h1>🍽️ Cardápio</h1>
  <p id="data-hoje">{{.Today}}</p>
  <form method="post" action="/v1/theme/toggle">
    <input type="hidden" name="tab" value="{{.TabID}}">
    <input type="hidden" name="voltar" value="{{.Query}}">
    <button id="btn-tema" type="submit" data-action="toggle-theme" aria-pressed="{{.Theme.Dark}}">{{.Theme.ButtonLabel}}</button>
  </form>
</header>
<form id="filtros" method="get" action="/">
  <input type="hidden" name="tab" value="{{.TabID}}">
  <input id="input-busca" name="busca" type="search" placeholder="Buscar prato..." value="{{.Criteria.SearchText}}" autocomplete="off">
  <input id="filtro-calorias" name="calorias" type="number" min="0" step="50" placeholder="Máx. calorias" value="{{.Criteria.MaxCaloriesText}}">
  <select id="filtro-tipo" name="tipo">
    <option value="">Todos os tipos</option>
    {{- range .Categories}}
    <option value="{{.}}"{{if eq . $.Criteria.Category}} selected{{end}}>{{.}}</option>
    {{- end}}
  </select>
  <select id="sort-by" name="ordenar">
    <option value=""{{if eq .Criteria.SortKey ""}} selected{{end}}>Sem ordenação</option>
    <option value="nome"{{if eq .Criteria.SortKey "nome"}} selected{{end}}>Nome</option>
    <option value="calorias"{{if eq .Criteria.SortKey "calorias"}} selected{{end}}>Calorias</option>
  </select>
  <button type="submit" class="btn-filtrar">Filtrar</button>
</form>
{{- if eq .Menu.Layout "flat"}}
<form method="post" action="/v1/menu/dish-of-the-day">
  <input type="hidden" name="tab" value="{{.TabID}}">
  <input type="hidden" name="voltar" value="{{.Query}}">
  <button id="btn-prato-dia" type="submit" data-action="dish-of-day">🎲 Sortear prato do dia</button>
</form>
{{- end}}
<p id="feedback-busca" role="status">{{.Menu.Status}}</p>
<main id="menu">{{template "menu" .Menu}}</main>
<p><a href="{{.ChartURL}}">📊 Ver gráfico nutricional</a></p>
<section id="comentarios">{{template "comments" .Comments}}</section>
<script>` + pageScript + `</script>
</body>
</html>{{end}}`

const dishBadge = "PRATO DO DIA"
const noComments = "Nenhum comentário ainda."

const pageCSS = `
body { font-family: system-ui, sans-serif; margin: 0 auto; max-width: 1100px; padding: 16px; background: #f7f7f2; color: #1f2933; }
body.dark-mode { background: #111827; color: #e5e7eb; }
header { display: flex; align-items: center; gap: 16px; flex-wrap: wrap; }
#filtros { display: flex; gap: 8px; flex-wrap: wrap; margin: 12px 0; }
.cards-container { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 12px; }
.card { position: relative; display: flex; gap: 10px; padding: 12px; border-radius: 12px; background: #fff; box-shadow: 0 1px 3px rgba(0,0,0,.1); animation: surgir .4s ease both; }
body.dark-mode .card { background: #1f2937; }
.card.prato-do-dia { outline: 3px solid #f59e0b; }
.prato-badge, .dia-badge { background: #f59e0b; color: #111; border-radius: 999px; font-size: .7rem; font-weight: 700; padding: 2px 8px; }
.prato-badge { position: absolute; top: -10px; right: 8px; }
.emoji { font-size: 2rem; }
.nome { font-weight: 700; }
.tipo { font-size: .8rem; text-transform: capitalize; opacity: .7; }
.nutri { display: grid; grid-template-columns: 1fr 1fr; font-size: .8rem; }
.dia-semana-row { display: flex; align-items: center; gap: 8px; }
.aviso, .erro { color: #b91c1c; font-weight: 700; padding: 10px 6px; }
.lista-comentarios { list-style: none; padding: 0; }
.estrelas { color: #f59e0b; }
@keyframes surgir { from { opacity: 0; transform: translateY(6px); } to { opacity: 1; transform: none; } }
`

// pageScript forwards UI events to /ws/events and applies the pushed renders.
// Without a socket the forms above still work through plain HTTP.
const pageScript = `
(function () {
  var body = document.body;
  var params = new URLSearchParams(location.search);
  params.set('tab', body.dataset.tab);
  var socket = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws/events?' + params.toString());
  var open = function () { return socket.readyState === WebSocket.OPEN; };
  var send = function (type, field, value) {
    if (open()) socket.send(JSON.stringify({ type: type, field: field, value: value }));
  };
  var scheme = window.matchMedia ? window.matchMedia('(prefers-color-scheme: dark)') : null;

  socket.addEventListener('open', function () {
    if (scheme) send('system-theme', '', scheme.matches ? 'dark' : 'light');
  });
  socket.addEventListener('message', function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === 'render') {
      document.getElementById('menu').innerHTML = msg.html;
      document.getElementById('feedback-busca').textContent = msg.status;
    } else if (msg.type === 'theme') {
      var dark = msg.mode === 'dark';
      body.classList.toggle('dark-mode', dark);
      var btn = document.getElementById('btn-tema');
      btn.textContent = msg.label;
      btn.setAttribute('aria-pressed', String(dark));
    }
  });
  if (scheme) {
    scheme.addEventListener('change', function (e) { send('system-theme', '', e.matches ? 'dark' : 'light'); });
  }

  document.getElementById('input-busca').addEventListener('input', function (e) {
    send('input', 'busca', e.target.value);
  });
  ['filtro-calorias', 'filtro-tipo', 'sort-by'].forEach(function (id) {
    var el = document.getElementById(id);
    el.addEventListener('change', function () { send('change', el.name, el.value); });
  });
  document.querySelectorAll('[data-action]').forEach(function (el) {
    el.addEventListener('click', function (e) {
      if (!open()) return;
      e.preventDefault();
      send('click', '', el.dataset.action);
    });
  });
  document.getElementById('filtros').addEventListener('submit', function (e) {
    if (open()) e.preventDefault();
  });
})();
`
