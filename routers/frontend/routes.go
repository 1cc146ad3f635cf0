package frontend

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
)

func (r *frontendRouter) LandingPage(ctx *gin.Context) {
	ctx.Render(http.StatusOK, render.HTML{
		Template: r.landingPage,
		Name:     r.landingPage.Name(),
		Data: templateDataModel{
			Cfg:  r.cfg,
			Year: r.timeProvider.Now().Year(),
		},
	})
}

// StaticAssets serves files from the static directory at their relative paths.
// Anything else is left unwritten so gin answers with its default 404.
func (r *frontendRouter) StaticAssets(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
		return
	}

	// cleaning a rooted path drops any ".." reaching above the static directory
	relativePath := path.Clean("/" + ctx.Request.URL.Path)
	filePath := filepath.Join(r.cfg.StaticDir, filepath.FromSlash(relativePath))

	file, err := os.Open(filePath)
	if err != nil {
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		return
	}

	r.logger.Debug("serving static asset", zap.String("path", filePath))
	http.ServeContent(ctx.Writer, ctx.Request, info.Name(), info.ModTime(), file)
}
