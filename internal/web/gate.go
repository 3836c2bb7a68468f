package web

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/siriwat/lostfound/internal/api"
	"github.com/siriwat/lostfound/internal/auth"
	"github.com/siriwat/lostfound/internal/store"
)

type gatePageData struct {
	PageData
	PINSet    bool
	StaffName string
}

// GatePage handles GET /gate.
func (s *Server) GatePage(w http.ResponseWriter, r *http.Request) {
	_, set, err := store.GetPIN(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to read PIN", "error", err)
	}
	s.Templates.Render(w, "gate.html", &gatePageData{
		PageData: PageData{Title: "Staff Only"},
		PINSet:   set,
	})
}

// GateSubmit handles POST /gate. The first submission creates the PIN.
func (s *Server) GateSubmit(w http.ResponseWriter, r *http.Request) {
	pin := strings.TrimSpace(r.FormValue("pin"))
	staffName := strings.TrimSpace(r.FormValue("staff_name"))

	stored, set, err := store.GetPIN(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to read PIN", "error", err)
		s.Templates.Render(w, "gate.html", &gatePageData{
			PageData: PageData{Title: "Staff Only", Error: "เกิดข้อผิดพลาด กรุณาลองใหม่"},
			PINSet:   set,
		})
		return
	}

	if !set {
		if utf8.RuneCountInString(pin) < api.MinPINLength {
			s.Templates.Render(w, "gate.html", &gatePageData{
				PageData:  PageData{Title: "Staff Only", Error: "ตั้ง PIN อย่างน้อย 4 ตัวอักษร"},
				StaffName: staffName,
			})
			return
		}
		if err := store.SetPIN(r.Context(), s.DB, pin); err != nil {
			slog.Error("failed to store PIN", "error", err)
			s.Templates.Render(w, "gate.html", &gatePageData{
				PageData:  PageData{Title: "Staff Only", Error: "เกิดข้อผิดพลาด กรุณาลองใหม่"},
				StaffName: staffName,
			})
			return
		}
		slog.Info("staff PIN created")
	} else if pin != stored {
		slog.Warn("gate unlock failed", "remote", r.RemoteAddr)
		s.Templates.Render(w, "gate.html", &gatePageData{
			PageData:  PageData{Title: "Staff Only", Error: "PIN ไม่ถูกต้อง"},
			PINSet:    true,
			StaffName: staffName,
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, staffName)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		s.Templates.Render(w, "gate.html", &gatePageData{
			PageData: PageData{Title: "Staff Only", Error: "เกิดข้อผิดพลาด กรุณาลองใหม่"},
			PINSet:   true,
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	slog.Info("console unlocked", "staff", staffName)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	http.Redirect(w, r, "/gate", http.StatusSeeOther)
}
