package handlers

import (
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// HandleQR renders the join link for a room code as a PNG so the host can
// hold their screen up to the table.
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/qr/"))
	if code == "" {
		http.Error(w, "Room code required", http.StatusBadRequest)
		return
	}
	if _, err := ctx.Store.Get(r.Context(), code); err != nil {
		http.NotFound(w, r)
		return
	}

	joinURL := ctx.BaseURL + "/join?code=" + code
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		ctx.Log.WithField("room", code).WithError(err).Error("QR encode failed")
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
