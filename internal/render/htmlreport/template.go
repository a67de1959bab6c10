package htmlreport

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem; color: #1f2430; }
h1 { margin-bottom: 0.25rem; }
.meta { color: #6b7280; margin-bottom: 1.5rem; }
.issues { color: #b91c1c; font-weight: 600; }
.clean { color: #15803d; font-weight: 600; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d1d5db; padding: 0.5rem 0.75rem; text-align: left; vertical-align: top; }
th { background: #f3f4f6; }
tr.invalid td { background: #fef2f2; }
img.thumb { max-width: 160px; max-height: 120px; display: block; }
.missing { color: #b91c1c; font-size: 0.85rem; }
.present { color: #15803d; font-size: 0.85rem; }
.extras { color: #a16207; font-size: 0.85rem; }
ul { margin: 0; padding-left: 1.1rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Trip {{.Trip}} &middot; generated {{.GeneratedAt}}</p>
{{if .IssueCount}}<p class="issues">{{.IssueCount}} issue(s) detected.</p>{{else}}<p class="clean">All expected directories and assets found.</p>{{end}}
<table>
<thead>
<tr>
{{if .SiteLevel}}<th>Site</th>{{end}}
<th>Puck</th>
<th>Pin</th>
<th>Collection</th>
{{range .Headers}}<th>{{.}}</th>{{end}}
<th>Notes</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr{{if not .Valid}} class="invalid"{{end}}>
{{if $.SiteLevel}}<td>{{.Site}}</td>{{end}}
<td>{{.Puck}}</td>
<td>{{.Pin}}</td>
<td>{{.Collection}}</td>
{{range .Slots}}
<td>
{{if .Present}}{{if .DataURI}}<img class="thumb" src="{{.DataURI}}" alt="{{.RelPath}}">{{else}}<span class="present">present</span>{{end}}{{else}}<span class="missing">missing<br>{{.RelPath}}</span>{{end}}
</td>
{{end}}
<td>
{{if .Issues}}<ul>{{range .Issues}}<li class="missing">{{.}}</li>{{end}}</ul>{{end}}
{{if .Extras}}<div class="extras">extras: {{range $i, $e := .Extras}}{{if $i}}, {{end}}{{$e}}{{end}}</div>{{end}}
</td>
</tr>
{{end}}
</tbody>
</table>
</body>
</html>
`
