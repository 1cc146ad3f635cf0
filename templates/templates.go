package templates

import "embed"

// LandingPage is the path of the landing page template inside FS
const LandingPage = "index.gohtml"

// FS holds the HTML templates rendered by the frontend router
//go:embed *.gohtml
var FS embed.FS
