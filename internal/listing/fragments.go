package listing

import "html/template"

var landingTemplate = template.Must(template.New("landing").Parse(`
<div class="hero-section">
  <h1><i class="fas fa-graduation-cap"></i> {{.Title}}</h1>
  <p class="hero-subtitle">{{.Total}} questions across {{len .Cards}} subjects</p>
</div>
<div class="subjects-grid">
{{- range .Cards}}
  <a class="subject-card" href="{{.File}}" data-subject="{{.Name}}">
    <div class="subject-icon"><i class="fas {{.Icon}}"></i></div>
    <h2 class="subject-name">{{.Display}}</h2>
    {{- if .Description}}
    <p class="subject-description">{{.Description}}</p>
    {{- end}}
    <span class="subject-count">{{.Count}} {{if eq .Count 1}}question{{else}}questions{{end}}</span>
  </a>
{{- end}}
</div>
`))

var subjectTemplate = template.Must(template.New("subject").Parse(`
<div class="hero-section">
  <a href="index.html" class="back-btn"><i class="fas fa-arrow-left"></i> All Subjects</a>
  <h1><i class="fas {{.Icon}}"></i> {{.Display}}</h1>
  <p class="hero-subtitle">{{.Count}} questions across {{.UnitCount}} units</p>
</div>
<div class="search-container">
  <i class="fas fa-search search-icon"></i>
  <input type="text" id="searchInput" class="search-input" placeholder="Search questions...">
</div>
<div class="filter-tabs">
  <button class="filter-tab active" data-filter="all">All Questions</button>
{{- range .Units}}
  <button class="filter-tab" data-filter="{{.}}"><i class="fas fa-book"></i> {{.}}</button>
{{- end}}
</div>
<div class="questions-grid">
{{- range .Cards}}
  <div class="question-card" data-unit="{{.Unit}}">
    <div class="question-number">Q{{.Number}}</div>
    <a class="question-title" href="{{.Slug}}">{{.Title}}</a>
    <div class="question-footer">
      <span class="question-unit"><i class="fas fa-tag"></i> {{.Badge}}</span>
      <button class="bookmark-btn" data-slug="{{.Slug}}" data-title="{{.Title}}" title="Bookmark this question"><i class="far fa-bookmark"></i></button>
    </div>
  </div>
{{- end}}
</div>
`))

type landingView struct {
	Title string
	Total int
	Cards []subjectCard
}

type subjectCard struct {
	Name        string
	Display     string
	Icon        string
	Description string
	File        string
	Count       int
}

type subjectView struct {
	subjectCard
	UnitCount int
	Units     []string
	Cards     []questionCard
}

type questionCard struct {
	Number int
	Slug   string
	Title  string
	Unit   string
	Badge  string
}
