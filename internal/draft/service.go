package draft

import (
	"context"
	"log/slog"
	"slices"

	"pyronix-studio/internal/catalog"
	"pyronix-studio/internal/order"
	"pyronix-studio/internal/pkg/model"
)

// FallbackSummary replaces the AI briefing when the summarizer is down. The
// order still goes through; a missing summary is never worth losing a client.
const FallbackSummary = "Prêt pour la prod."

// Summarizer turns a brief into a short prose summary. Opaque: text or error.
type Summarizer interface {
	Summarize(ctx context.Context, order model.Order) (string, error)
}

// Handoff is the best-effort operator notification pair: a pre-filled mailto
// URL handed back to the client, and a direct operator ping. Neither gates
// the submission.
type Handoff interface {
	NewOrderMailto(order model.Order) string
	NotifyOperator(order model.Order)
}

type SubmitResult struct {
	Order     model.Order
	MailtoURL string
}

type Service interface {
	Create(ctx context.Context) Session
	Get(ctx context.Context, sessionID string) (*Session, error)
	UpdateFields(ctx context.Context, sessionID string, patch FieldPatch) (*Session, error)
	ToggleStyle(ctx context.Context, sessionID, style string) (*Session, error)
	SetLanguage(ctx context.Context, sessionID string, slot int, lang model.Choice) (*Session, error)
	Advance(ctx context.Context, sessionID string) (*Session, error)
	Retreat(ctx context.Context, sessionID string) (*Session, error)
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

type DefaultService struct {
	store      *Store
	orders     order.Service
	summarizer Summarizer
	handoff    Handoff
}

func NewDefaultService(store *Store, orders order.Service, summarizer Summarizer, handoff Handoff) Service {
	return &DefaultService{
		store:      store,
		orders:     orders,
		summarizer: summarizer,
		handoff:    handoff,
	}
}

func (d *DefaultService) Create(ctx context.Context) Session {
	session := d.store.Create()
	slog.Info("Opened draft session", "sessionID", session.ID)
	return session
}

func (d *DefaultService) Get(ctx context.Context, sessionID string) (*Session, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (d *DefaultService) UpdateFields(ctx context.Context, sessionID string, patch FieldPatch) (*Session, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.Draft.apply(patch)
	d.store.Set(*session)
	return session, nil
}

// ToggleStyle removes the style when already selected, otherwise adds it up
// to the MaxStyles cap. At the cap, adding is rejected rather than silently
// dropped.
func (d *DefaultService) ToggleStyle(ctx context.Context, sessionID, style string) (*Session, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !catalog.IsMusicalStyle(style) {
		return nil, ErrUnknownStyle
	}

	styles := session.Draft.Styles
	if idx := slices.Index(styles, style); idx >= 0 {
		session.Draft.Styles = slices.Delete(slices.Clone(styles), idx, idx+1)
	} else {
		if len(styles) >= MaxStyles {
			return session, ErrStyleLimit
		}
		session.Draft.Styles = append(slices.Clone(styles), style)
	}

	d.store.Set(*session)
	return session, nil
}

// SetLanguage replaces the language selection of the addressed voice slot.
// Solo drafts only expose slot 1; duo drafts expose slots 1 and 2, each
// keeping exactly one language.
func (d *DefaultService) SetLanguage(ctx context.Context, sessionID string, slot int, lang model.Choice) (*Session, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	voice := session.Draft.Voice
	switch {
	case voice.Mode == model.VoiceSolo && slot == 1 && voice.Solo != nil:
		solo := *voice.Solo
		solo.Language = lang
		session.Draft.Voice.Solo = &solo
	case voice.Mode == model.VoiceDuo && voice.Duo != nil && (slot == 1 || slot == 2):
		duo := *voice.Duo
		if slot == 1 {
			duo.Voice1.Language = lang
		} else {
			duo.Voice2.Language = lang
		}
		session.Draft.Voice.Duo = &duo
	default:
		return nil, ErrBadVoiceSlot
	}

	d.store.Set(*session)
	return session, nil
}

// Advance moves to the next step only when the current one validates; on
// failure the error map is surfaced on the session and the step is kept.
func (d *DefaultService) Advance(ctx context.Context, sessionID string) (*Session, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step >= StepConfirm {
		return session, nil
	}

	if errs := Validate(session.Draft, session.Step); len(errs) > 0 {
		session.Errors = errs
		d.store.Set(*session)
		return session, ErrStepInvalid
	}

	session.Step++
	session.Errors = nil
	d.store.Set(*session)
	return session, nil
}

// Retreat always succeeds above the first step and never re-validates.
func (d *DefaultService) Retreat(ctx context.Context, sessionID string) (*Session, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step <= StepArtist {
		return session, ErrAtFirstStep
	}

	session.Step--
	d.store.Set(*session)
	return session, nil
}

// Submit runs the final pipeline: summarize, persist, notify, in that order.
// A summarizer failure degrades to the fallback summary and the submission
// proceeds; a persistence failure aborts it and no notification goes out.
func (d *DefaultService) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	session, ok := d.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Step != StepConfirm {
		return nil, ErrNotConfirmStep
	}
	if !session.Draft.AcceptTerms {
		return nil, ErrTermsNotAccept
	}

	if !d.store.BeginSubmit(sessionID) {
		return nil, ErrSubmitInFlight
	}
	defer d.store.EndSubmit(sessionID)

	if errs := validateAll(session.Draft); len(errs) > 0 {
		session.Errors = errs
		d.store.Set(*session)
		return nil, ErrStepInvalid
	}

	ord := session.Draft.toOrder()

	summary, err := d.summarizer.Summarize(ctx, ord)
	if err != nil {
		slog.Warn("Summarizer unavailable, using fallback summary", "error", err, "sessionID", sessionID)
		summary = FallbackSummary
	}
	if summary == "" {
		summary = FallbackSummary
	}
	ord.Summary = summary

	created, err := d.orders.NewOrder(ctx, ord)
	if err != nil {
		slog.Error("Failed to persist submitted order", "error", err, "sessionID", sessionID)
		return nil, err
	}

	d.handoff.NotifyOperator(*created)
	d.store.Delete(sessionID)

	slog.Info("Order submitted", "orderID", created.ID, "reference", created.Reference)
	return &SubmitResult{
		Order:     *created,
		MailtoURL: d.handoff.NewOrderMailto(*created),
	}, nil
}
