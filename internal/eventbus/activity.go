package eventbus

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"maidadmin/internal/domain"
)

// activityTypes are the events recorded in the activity log
var activityTypes = []EventType{
	EventSearchTermChanged,
	EventAdminDataLoaded,
	EventUserBlocked,
	EventUserUnblocked,
	EventAdminCreated,
	EventRecordDeleted,
	EventLoggedIn,
	EventLoggedOut,
	EventThemeChanged,
	EventLanguageChanged,
	EventError,
}

// LogActivity records every domain event in the log file and returns a
// function that stops recording. Search terms are logged at debug level
// since they arrive per keystroke.
func LogActivity(b EventBus, logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("activity")

	unsubscribers := make([]func(), 0, len(activityTypes))
	for _, t := range activityTypes {
		unsubscribers = append(unsubscribers, b.Subscribe(t, func(e DomainEvent) {
			level, fields := activityFields(e)
			if ce := logger.Check(level, string(e.Type())); ce != nil {
				ce.Write(fields...)
			}
		}))
	}
	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}

func activityFields(e DomainEvent) (zapcore.Level, []zap.Field) {
	switch e := e.(type) {
	case domain.SearchTermChangedEvent:
		return zapcore.DebugLevel, []zap.Field{zap.String("term", e.Term)}
	case domain.AdminDataLoadedEvent:
		return zapcore.InfoLevel, []zap.Field{
			zap.Int("users", e.Users),
			zap.Int("projects", e.Projects),
			zap.Int("datasets", e.Datasets),
		}
	case domain.UserBlockedEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("user_id", e.UserID)}
	case domain.UserUnblockedEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("user_id", e.UserID)}
	case domain.AdminCreatedEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("username", e.Username)}
	case domain.RecordDeletedEvent:
		return zapcore.InfoLevel, []zap.Field{
			zap.String("resource", string(e.Resource)),
			zap.String("id", e.ID),
		}
	case domain.LoggedInEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("username", e.Username)}
	case domain.LoggedOutEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("reason", e.Reason)}
	case domain.ThemeChangedEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("theme", string(e.Theme))}
	case domain.LanguageChangedEvent:
		return zapcore.InfoLevel, []zap.Field{zap.String("language", string(e.Language))}
	case domain.ErrorEvent:
		return zapcore.WarnLevel, []zap.Field{zap.String("message", e.Message), zap.Error(e.Err)}
	}
	return zapcore.InfoLevel, nil
}
