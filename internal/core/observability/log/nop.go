package log

type nopLogger struct{}

// Nop returns a Log that discards everything. Components treat a nil logger
// as an error; tests and optional wiring use Nop instead.
func Nop() Log { return nopLogger{} }

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

func (n nopLogger) With(...Field) Log { return n }

func (nopLogger) SetLevel(Level)  {}
func (nopLogger) GetLevel() Level { return LevelError }
