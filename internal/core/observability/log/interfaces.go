package log

// Log is the logging facade handed to every component. The plugin writes a
// single diagnostic stream; components never construct their own loggers.
type Log interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Log

	SetLevel(level Level)
	GetLevel() Level
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field is a typed key/value pair attached to a log line.
type Field struct {
	Key   string
	Type  FieldType
	Value any
}

// A FieldType indicates which concrete type Value holds and how it should
// be encoded.
type FieldType uint8

const (
	UnknownType FieldType = iota
	BoolType
	Float32Type
	Float64Type
	IntType
	StringType
	Uint32Type
	UintptrType
	ErrorType
)

func Any(key string, val any) Field {
	return Field{Key: key, Type: UnknownType, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Type: BoolType, Value: val}
}

func Float32(key string, val float32) Field {
	return Field{Key: key, Type: Float32Type, Value: val}
}

func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Type: IntType, Value: val}
}

func String(key string, val string) Field {
	return Field{Key: key, Type: StringType, Value: val}
}

func Uint32(key string, val uint32) Field {
	return Field{Key: key, Type: Uint32Type, Value: val}
}

func Uintptr(key string, val uintptr) Field {
	return Field{Key: key, Type: UintptrType, Value: val}
}

func Err(val error) Field {
	return Field{Key: "error", Type: ErrorType, Value: val}
}
