package telegram

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"jokerbot/internal/engine"
	"jokerbot/internal/journal"
)

// #region transport
// Handle locates a sent message for later edits.
type Handle struct {
	ChatID    int64
	MessageID int
}

// Transport is the outbound boundary to the chat service. Implementations
// either succeed (returning a handle) or fail; the router applies the
// documented send-fallback on edit failure.
type Transport interface {
	Send(ctx context.Context, chatID int64, text string) (Handle, error)
	Edit(ctx context.Context, h Handle, text string) error
}

// #endregion transport

// #region session
// session holds one chat's isolated state: its engine and the outbox of
// sent prediction handles. Game numbering is chat-local, so sessions never
// share state.
type session struct {
	engine *engine.Engine
	outbox map[int]Handle // target game → sent prediction message
}

// #endregion session

// #region router
// Router owns per-chat sessions and drives game messages through the
// engine, translating send/edit instructions into transport calls. The
// mutex serializes message handling: no two decisions or verifications run
// concurrently against shared state.
type Router struct {
	mu        sync.Mutex
	transport Transport
	journal   *journal.Journal // nil disables outcome recording
	log       *zap.Logger
	sessions  map[int64]*session
}

// NewRouter creates a router. journal may be nil.
func NewRouter(transport Transport, j *journal.Journal, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		transport: transport,
		journal:   j,
		log:       log,
		sessions:  make(map[int64]*session),
	}
}

// #endregion router

// #region handle-message
// HandleGameMessage runs one chat message (new or edited) through the
// chat's engine and performs the resulting transport calls.
func (r *Router) HandleGameMessage(ctx context.Context, chatID int64, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := r.sessionFor(chatID)
	res := sess.engine.Process(text)

	if res.Send != nil {
		r.sendPrediction(ctx, chatID, sess, res.Send)
	}
	if res.Edit != nil {
		r.applyEdit(ctx, chatID, sess, res.Edit)
	}
}

func (r *Router) sessionFor(chatID int64) *session {
	sess, ok := r.sessions[chatID]
	if !ok {
		sess = &session{
			engine: engine.New(r.log.With(zap.Int64("chat_id", chatID))),
			outbox: make(map[int]Handle),
		}
		r.sessions[chatID] = sess
	}
	return sess
}

// #endregion handle-message

// #region send-prediction
func (r *Router) sendPrediction(ctx context.Context, chatID int64, sess *session, send *engine.Send) {
	h, err := r.transport.Send(ctx, chatID, send.Text)
	if err != nil {
		// The prediction stays in the ledger; with no outbox entry a later
		// resolution falls back to a fresh send.
		r.log.Error("failed to send prediction",
			zap.Int64("chat_id", chatID),
			zap.Int("target_game", send.TargetGame),
			zap.Error(err))
		return
	}
	sess.outbox[send.TargetGame] = h

	if r.journal != nil {
		err := r.journal.RecordDecision(journal.DecisionEntry{
			ChatID:       chatID,
			SourceGame:   send.SourceGame,
			TargetGame:   send.TargetGame,
			Combination:  send.Combination,
			RenderedText: send.Text,
		})
		if err != nil {
			r.log.Warn("journal decision failed", zap.Error(err))
		}
	}
}

// #endregion send-prediction

// #region apply-edit
func (r *Router) applyEdit(ctx context.Context, chatID int64, sess *session, edit *engine.Edit) {
	h, ok := sess.outbox[edit.TargetGame]
	if !ok {
		r.log.Warn("no outbox handle for resolved prediction",
			zap.Int64("chat_id", chatID),
			zap.Int("target_game", edit.TargetGame))
	} else if err := r.transport.Edit(ctx, h, edit.Text); err != nil {
		r.log.Error("failed to edit prediction, sending fallback",
			zap.Int("target_game", edit.TargetGame),
			zap.Error(err))
		if _, sendErr := r.transport.Send(ctx, chatID, edit.Text); sendErr != nil {
			r.log.Error("fallback send failed", zap.Error(sendErr))
		}
	}

	if r.journal != nil {
		err := r.journal.RecordResolution(journal.ResolutionEntry{
			ChatID:             chatID,
			TargetGame:         edit.TargetGame,
			Status:             string(edit.Status),
			VerificationOffset: edit.Offset,
			FinalText:          edit.Text,
		})
		if err != nil {
			r.log.Warn("journal resolution failed", zap.Error(err))
		}
	}
}

// #endregion apply-edit
