package web

import (
	"errors"
	"net/http"

	"pyronix-studio/internal/catalog"
	"pyronix-studio/internal/draft"
	"pyronix-studio/internal/pkg/model"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	drafts draft.Service
}

func NewDraftHandler(drafts draft.Service) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

func (h *DraftHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"platforms":   catalog.Platforms,
		"styles":      catalog.MusicalStyles,
		"languages":   catalog.Languages,
		"moods":       catalog.Moods,
		"tempos":      catalog.Tempos,
		"demo_tracks": catalog.DemoTracks,
	})
}

func (h *DraftHandler) CreateSession(c *gin.Context) {
	session := h.drafts.Create(c.Request.Context())
	c.JSON(http.StatusCreated, session)
}

func (h *DraftHandler) GetSession(c *gin.Context) {
	session, err := h.drafts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDraftError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *DraftHandler) UpdateFields(c *gin.Context) {
	var patch draft.FieldPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	session, err := h.drafts.UpdateFields(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeDraftError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type toggleStyleRequest struct {
	Style string `json:"style" binding:"required"`
}

func (h *DraftHandler) ToggleStyle(c *gin.Context) {
	var payload toggleStyleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	session, err := h.drafts.ToggleStyle(c.Request.Context(), c.Param("id"), payload.Style)
	if err != nil {
		writeDraftError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type setLanguageRequest struct {
	Slot     int          `json:"slot" binding:"required"`
	Language model.Choice `json:"language" binding:"required"`
}

func (h *DraftHandler) SetLanguage(c *gin.Context) {
	var payload setLanguageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	session, err := h.drafts.SetLanguage(c.Request.Context(), c.Param("id"), payload.Slot, payload.Language)
	if err != nil {
		writeDraftError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *DraftHandler) Advance(c *gin.Context) {
	session, err := h.drafts.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDraftError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *DraftHandler) Retreat(c *gin.Context) {
	session, err := h.drafts.Retreat(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDraftError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type submitResponse struct {
	Order     model.Order `json:"order"`
	MailtoURL string      `json:"mailto_url"`
}

func (h *DraftHandler) Submit(c *gin.Context) {
	result, err := h.drafts.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		session, _ := h.drafts.Get(c.Request.Context(), c.Param("id"))
		writeDraftError(c, session, err)
		return
	}
	c.JSON(http.StatusCreated, submitResponse{
		Order:     result.Order,
		MailtoURL: result.MailtoURL,
	})
}

func writeDraftError(c *gin.Context, session *draft.Session, err error) {
	switch {
	case errors.Is(err, draft.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session introuvable"})
	case errors.Is(err, draft.ErrStepInvalid):
		body := gin.H{"error": "Étape incomplète"}
		if session != nil {
			body["errors"] = session.Errors
			body["step"] = session.Step
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, draft.ErrStyleLimit):
		c.JSON(http.StatusConflict, gin.H{"error": "Maximum 4 styles"})
	case errors.Is(err, draft.ErrUnknownStyle),
		errors.Is(err, draft.ErrBadVoiceSlot),
		errors.Is(err, draft.ErrAtFirstStep):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, draft.ErrNotConfirmStep),
		errors.Is(err, draft.ErrTermsNotAccept),
		errors.Is(err, draft.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'envoi au studio. Vérifiez votre connexion."})
	}
}
