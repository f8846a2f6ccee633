package render

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | {{.LabName}}</title>
<link rel="stylesheet" href="{{.Links.Assets}}/css/style.css">
</head>
<body class="page-{{.Active}}">
<header class="site-header">
  <nav class="site-nav">
    <a class="site-logo" href="{{.Links.Publications}}">{{.LabName}}</a>
    <ul class="nav-links">
      <li><a href="{{.Links.Faculty}}"{{if eq .Active "faculty"}} class="active"{{end}}>Faculty</a></li>
      <li><a href="{{.Links.Research}}"{{if eq .Active "research"}} class="active"{{end}}>Research</a></li>
      <li><a href="{{.Links.Publications}}"{{if eq .Active "publications"}} class="active"{{end}}>Publications</a></li>
    </ul>
  </nav>
</header>
<main class="site-main">
{{.Body}}
</main>
<footer class="site-footer">
  <p>&copy; {{.LabName}}</p>
</footer>
</body>
</html>
{{end}}`

const publicationsTemplate = `{{define "publications"}}<section class="publications-page">
  <h1 class="page-title">Publications</h1>
  <div class="publication-filters">
  {{- range .Groups}}
    <div class="filter-group filter-group-{{.Filter}}{{if .Hidden}} hidden{{end}}">
      <span class="filter-label">{{.Label}}</span>
      {{- range .Buttons}}
      {{- if .Href}}
      <a class="filter-btn{{if .Active}} active{{end}}" data-filter="{{.Filter}}" data-value="{{.Value}}" href="{{.Href}}">{{.Label}}</a>
      {{- else}}
      <button type="button" class="filter-btn{{if .Active}} active{{end}}" data-filter="{{.Filter}}" data-value="{{.Value}}">{{.Label}}</button>
      {{- end}}
      {{- end}}
    </div>
  {{- end}}
  </div>
  <form class="publication-search" method="get" action="{{.Links.Publications}}">
    {{- range $name, $values := .Keep}}
    <input type="hidden" name="{{$name}}" value="{{index $values 0}}">
    {{- end}}
    <input type="search" name="q" value="{{.Query.Search}}" placeholder="Search publications..." aria-label="Search publications">
  </form>
  <div class="publications-content">
{{template "publication-list" .List}}
  </div>
</section>
{{end}}`

const publicationListTemplate = `{{define "publication-list"}}
{{- if .Failed}}
<div class="error-message">
  <h3>{{.LoadTitle}}</h3>
  <p>{{.LoadMessage}}</p>
</div>
{{- else if .Listing.Empty}}
<p class="no-results">{{.NoResults}}</p>
{{- else}}
{{- range .Listing.Sections}}
<section class="publication-year-section" data-group="{{.Key}}">
  <h2 class="year-title">{{.Title}}</h2>
  {{- range .Items}}
  {{template "publication-item" .}}
  {{- end}}
</section>
{{- end}}
{{- end}}
{{end}}

{{define "publication-item"}}<div class="publication-item{{if .Featured}} featured{{end}}" data-category="{{.Category}}" data-type="{{.Type}}">
    <div class="publication-content">
      <h3 class="publication-title">{{.Title}}{{with .TitleKor}}<br><span class="publication-title-kor">{{.}}</span>{{end}}</h3>
      {{- with .Authors}}
      <p class="publication-authors">{{.}}</p>
      {{- end}}
      {{- with .AuthorsKor}}
      <p class="publication-authors-kor">{{.}}</p>
      {{- end}}
      <p class="publication-venue"><strong>{{.Venue}}</strong>{{with .Presentation}} <span class="presentation-tag"><strong>{{.}}</strong></span>{{end}}</p>
      {{- with .Registration}}
      <p class="publication-patent-meta">Registration (등록): {{template "patent-meta" .}}</p>
      {{- end}}
      {{- with .Application}}
      <p class="publication-patent-meta">Application (출원): {{template "patent-meta" .}}</p>
      {{- end}}
      {{- with .Status}}
      <p class="publication-patent-meta">Status: <strong>{{.}}</strong></p>
      {{- end}}
      {{- with .Abstract}}
      <p class="publication-description">{{.}}</p>
      {{- end}}
      {{- with .Keywords}}
      <div class="publication-keywords">{{range .}}<span class="keyword">{{.}}</span>{{end}}</div>
      {{- end}}
      <div class="publication-links">{{range .Links}}<a href="{{.URL}}" class="pub-link">{{.Label}}</a>{{end}}</div>
    </div>
  </div>{{end}}

{{define "patent-meta"}}{{with .Country}}<strong>{{.}}</strong>, {{end}}{{with .Number}}<strong>{{.}}</strong>{{end}}{{with .Date}} ({{.}}){{end}}{{end}}`

const newsTemplate = `{{define "news"}}<article class="news-detail" id="news-detail">
{{- if .Message}}
  <p>{{.Message}}</p>
{{- else}}
{{- with .Detail}}
{{- $kind := printf "%s" .Header.Kind}}
  <header class="news-detail-header">
    <h1 class="news-detail-title">{{.Header.Title}}</h1>
    <div class="news-detail-meta">
      <span class="news-detail-date">{{.Header.Date}}</span>
      {{- with .Header.Badge}}
      <span class="news-detail-type news-type-{{$kind}}">{{.}}</span>
      {{- end}}
    </div>
    {{- with .Summary}}
    <p class="news-detail-summary">{{.}}</p>
    {{- end}}
  </header>
  {{- with .Description}}
  <section class="{{$kind}}-description">{{rich .}}</section>
  {{- end}}

  {{- with .Publications}}
  <section class="news-publications" id="news-publications">
    {{- if .Message}}
    <p class="news-publications-subtitle">{{.Message}}</p>
    {{- else}}
    <p class="news-publications-subtitle">{{.Summary}}</p>
    <div class="news-publications-list">
      {{- range .Items}}
      <article class="news-publication-item">
        <h3 class="news-publication-title">{{.Title}}</h3>
        <p class="news-publication-authors">{{.Authors}}</p>
        <p class="news-publication-venue"><strong>{{.Venue}}</strong>{{with .Presentation}} <span class="presentation-tag"><strong>{{.}}</strong></span>{{end}}</p>
        {{- with .Keywords}}
        <div class="news-publication-keywords">{{range .}}<span class="keyword">{{.}}</span>{{end}}</div>
        {{- end}}
        <div class="news-publication-links">{{range .Links}}<a href="{{.URL}}" class="pub-link" target="_blank" rel="noopener">{{.Label}}</a>{{end}}</div>
      </article>
      {{- end}}
    </div>
    {{- end}}
  </section>
  {{- end}}

  {{- if or .Groups .PeopleMessage}}
  <section class="{{$kind}}-people-section">
    {{- with .PeopleMessage}}
    <p class="{{$kind}}-people-subtitle">{{.}}</p>
    {{- end}}
    {{- range $i, $g := .Groups}}
    {{- if and $i (eq $kind "graduation")}}
    <hr class="graduation-divider">
    {{- end}}
    <div class="people-category">
      <h2 class="{{if eq $kind "admission"}}admission-group-title{{else}}category-title{{end}}">{{$g.Title}}</h2>
      <div class="people-grid">
        {{- range $g.Cards}}
        {{template "person-card" (card . $kind)}}
        {{- end}}
      </div>
    </div>
    {{- end}}
  </section>
  {{- end}}

  {{- with .Images}}
  <section class="{{$kind}}-images-grid">
    {{- range .}}
    <a class="{{$kind}}-image-card" href="{{.Src}}" data-full-src="{{.Src}}" data-alt="{{.Alt}}" target="_blank" rel="noopener"><img src="{{.Src}}" alt="{{.Alt}}" class="{{$kind}}-thumb"></a>
    {{- end}}
  </section>
  {{- end}}
  {{- with .Links}}
  <div class="{{$kind}}-links">
    {{- range .}}
    <a href="{{.URL}}" target="_blank" rel="noopener" class="{{$kind}}-link-chip">{{.Label}}</a>
    {{- end}}
  </div>
  {{- end}}

  {{- with .Careers}}
  <section class="career-people-section">
    {{- range .}}
    <article class="career-person-wrapper">
      {{template "person-card" (card .Person "career")}}
      {{- if or .Career .CareerKo}}
      <div class="career-next-block">
        {{- with .Career}}
        <p class="career-next-enline"><strong>Appointed as&nbsp;</strong><span>{{.}}</span></p>
        {{- end}}
        {{- with .CareerKo}}
        <p class="career-next-ko">{{.}}</p>
        {{- end}}
      </div>
      {{- end}}
      {{- if .HasArticle}}
      <p class="career-article"><span class="career-article-label">Related Article:</span> <a href="{{.ArticleURL}}" target="_blank" rel="noopener">{{.ArticleTitle}}</a></p>
      {{- end}}
    </article>
    {{- end}}
  </section>
  {{- end}}
{{- end}}
{{- end}}
</article>
{{end}}

{{define "person-card"}}<div class="person-card {{.Kind}}-person-card">
          {{- with .Photo}}
          <div class="person-photo">
            <img src="{{.}}" alt="{{$.Name}}" class="photo" onerror="this.onerror=null;this.src='{{$.Placeholder}}'">
          </div>
          {{- end}}
          <div class="person-info">
            <h3 class="person-name">{{.Name}}</h3>
            {{- with .Major}}
            <p class="person-major">{{.}}</p>
            {{- end}}
            {{- with .Thesis}}
            <div class="person-thesis-block">
              <p class="person-thesis-label"><strong>Thesis</strong></p>
              <p class="person-thesis-en">{{.}}</p>
            </div>
            {{- end}}
            {{- with .Email}}
            <p class="person-email"><a href="mailto:{{.}}">{{.}}</a></p>
            {{- end}}
            {{- with .Website}}
            <div class="person-links"><a href="{{.}}" target="_blank" class="person-link">Website</a></div>
            {{- end}}
          </div>
        </div>{{end}}`

const facultyTemplate = `{{define "faculty"}}<div id="faculty-container">
{{- if .Message}}
  <p class="error-message">{{.Message}}</p>
{{- else}}
{{- with .Page}}
  <div class="faculty-page">
    <div class="faculty-header">
      <div class="faculty-photo-block">
        <img src="{{.Photo}}" alt="{{.Name}}" class="faculty-photo">
        <p class="faculty-name">{{.Name}}</p>
        <p class="faculty-position">{{.Title}}</p>
        <p class="faculty-email"><a href="mailto:{{.Email}}">{{.Email}}</a></p>
      </div>
      <div class="faculty-intro-block">
        <div class="faculty-intro-text">{{rich .Intro}}</div>
        <div class="faculty-links">
          {{- with .GoogleScholar}}<a href="{{.}}" target="_blank">Google Scholar</a>{{end}}
          {{- with .CV}}<a href="{{.}}" target="_blank">Curriculum Vitae</a>{{end}}
        </div>
      </div>
    </div>
    <hr class="faculty-divider">

    {{- with .Experience}}
    {{template "faculty-section-open" "Professional Experience"}}
      <div class="exp-list">
        {{- range .}}
        <div class="exp-item">
          <div class="exp-main"><span class="exp-role"><strong>{{.Role}}</strong></span>{{with .Org}}, <span class="exp-org">{{.}}</span>{{end}}</div>
          {{- with .Period}}
          <div class="exp-period">{{.}}</div>
          {{- end}}
          {{- with .Details}}
          <ul class="exp-details">
            {{- range .}}
            {{- if .Period}}
            <li><span class="exp-detail-role">{{.Role}}</span> <span class="exp-detail-period">{{.Period}}</span></li>
            {{- else}}
            <li>{{.Role}}</li>
            {{- end}}
            {{- end}}
          </ul>
          {{- end}}
        </div>
        {{- end}}
      </div>
    {{template "faculty-section-close"}}
    {{- end}}

    {{- with .Advisory}}
    {{template "faculty-section-open" "Corporate & Technical Advisories"}}
      <div class="adv-list">
        {{- range .}}
        <div class="adv-item">
          <div class="adv-main"><span class="adv-role"><strong>{{.Role}}</strong></span>{{with .Org}}, <span class="adv-org">{{.}}</span>{{end}}</div>
          {{- with .Period}}
          <div class="adv-period">{{.}}</div>
          {{- end}}
        </div>
        {{- end}}
      </div>
    {{template "faculty-section-close"}}
    {{- end}}

    {{- with .Education}}
    {{template "faculty-section-open" "Education"}}
      <div class="edu-list">
        {{- range .}}
        <div class="edu-item">
          <div class="edu-main"><span class="edu-degree"><strong>{{.Degree}}</strong></span>, <span class="edu-school">{{.School}}</span></div>
          {{- with .Year}}
          <div class="edu-year">{{.}}</div>
          {{- end}}
          {{- with .Thesis}}
          <div class="edu-thesis"><span class="edu-thesis-label">Thesis:</span> <span class="edu-thesis-title">{{.}}</span></div>
          {{- end}}
        </div>
        {{- end}}
      </div>
    {{template "faculty-section-close"}}
    {{- end}}

    {{- with .Awards}}
    {{template "faculty-section-open" "Honors & Awards"}}
      <ul class="award-list">
        {{- range .}}
        <li class="award-item"><span class="award-name">{{.Name}}</span>{{with .Year}} <span class="award-year">{{.}}</span>{{end}}</li>
        {{- end}}
      </ul>
    {{template "faculty-section-close"}}
    {{- end}}

    {{- with .PublicService}}
    {{template "faculty-section-open" "Professional & Public Service"}}
      <ul class="public-service-list">
        {{- range .}}
        <li class="public-service-item"><span class="public-service-name">{{.Name}}</span>{{with .Period}} <span class="public-service-period">{{.}}</span>{{end}}</li>
        {{- end}}
      </ul>
    {{template "faculty-section-close"}}
    {{- end}}

    {{- with .AcademicGroups}}
    {{template "faculty-section-open" "Academic Service"}}
      <div class="academic-service-wrapper">
        {{- range .}}
        <div class="academic-group">
          <h3 class="academic-group-title">{{.Title}}</h3>
          {{- range .Roles}}
          <div class="academic-role-block">
            <div class="academic-role">{{.Role}}</div>
            <div class="academic-org-wrapper">
              {{- if .Org.Inline}}
              <div class="academic-org-inline">{{.Org.Joined}}</div>
              {{- else if .Org.Orgs}}
              <ul class="academic-org-list">
                {{- range .Org.Orgs}}
                <li class="academic-org-item"><span class="academic-org-name">{{.Name}}</span>{{with .Period}} <span class="academic-org-period">{{.}}</span>{{end}}</li>
                {{- end}}
              </ul>
              {{- end}}
            </div>
          </div>
          {{- end}}
        </div>
        {{- end}}
      </div>
    {{template "faculty-section-close"}}
    {{- end}}
  </div>
{{- end}}
{{- end}}
</div>
{{end}}

{{define "faculty-section-open"}}<div class="faculty-section-block">
      <h3 class="faculty-section-title">{{.}}</h3>
      <div class="faculty-section-content">{{end}}

{{define "faculty-section-close"}}</div>
    </div>{{end}}`

const researchTemplate = `{{define "research"}}<section class="research-page">
  <h1 class="page-title">Research</h1>
  <div id="research-list">
  {{- if .Message}}
    <p class="research-error">{{.Message}}</p>
  {{- else}}
  {{- range .Page.Sections}}
    <section class="research-section">
      <div class="research-section-header">
        <h2 class="research-section-title">{{.Title}}</h2>
        {{- with .Description}}
        <p class="research-section-description">{{.}}</p>
        {{- end}}
      </div>
      <div class="research-topics">
        {{- range .Cards}}
        <div class="research-topic{{if .Single}} research-topic-single{{end}}">
          <div class="research-topic-media">
            {{- if .Media.IsVideo}}
            <video class="research-topic-video" autoplay loop muted playsinline><source src="{{.Media.URL}}" type="video/mp4"></video>
            {{- else if .Media.IsImage}}
            <img src="{{.Media.URL}}" alt="{{.MediaAlt}}" class="research-topic-image">
            {{- else}}
            <div class="research-topic-media-placeholder">{{$.MediaPlaceholder}}</div>
            {{- end}}
          </div>
          <div class="research-topic-content">
            {{- with .Title}}
            <h3 class="research-topic-title">{{.}}</h3>
            {{- end}}
            <p class="research-topic-description">{{.Description}}</p>
            {{- with .Reference}}
            <a href="{{.}}" target="_blank" rel="noopener noreferrer" class="media-reference-pill">{{$.ReferenceLabel}}</a>
            {{- end}}
          </div>
        </div>
        {{- end}}
      </div>
    </section>
  {{- end}}
  {{- end}}
  </div>
</section>
{{end}}`
