package audit

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event is one append-only audit record: which account did what and how it
// ended. Word and WordsSeeded are filled when they apply.
type Event struct {
	Action      string
	AccountID   int64
	Word        string
	Outcome     string
	WordsSeeded int
}

// Recorder is a fire-and-forget audit sink. Implementations must never fail
// the business operation that emits the event.
type Recorder interface {
	Record(e Event)
}

// ZapRecorder appends structured audit records through a dedicated zap
// logger, one JSON line per outcome.
type ZapRecorder struct {
	log *zap.Logger
}

func NewZapRecorder(logPath string) (*ZapRecorder, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapRecorder{log: log}, nil
}

func (r *ZapRecorder) Record(e Event) {
	fields := []zap.Field{
		zap.String("action", e.Action),
		zap.Int64("user", e.AccountID),
		zap.String("outcome", e.Outcome),
	}
	if e.Word != "" {
		fields = append(fields, zap.String("word", e.Word))
	}
	if e.WordsSeeded > 0 {
		fields = append(fields, zap.Int("words_seeded", e.WordsSeeded))
	}
	r.log.Info("audit", fields...)
}

// Nop discards every event. Used in tests.
type Nop struct{}

func (Nop) Record(Event) {}
