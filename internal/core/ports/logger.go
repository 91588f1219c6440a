package ports

// Logger is the sink for user-visible diagnostics. Info/Warn go to
// stderr as informational text; Error records a failure. Progress and
// dry-run listings do not go through Logger — they use the dedicated
// progress writer (spec.md §7: "progress and dry-run listings to
// stdout" is a separate stream from error/log output).
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
