package conargs

import (
	"encoding"
	"errors"
	"flag"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cardinalby/go-console-args/cmdargs"
)

// ErrMissingValue is returned when a flag without value is bound to a non-bool field
var ErrMissingValue = errors.New("value is required")

// fieldSetter assigns argument values to a struct field
type fieldSetter struct {
	set      func(value cmdargs.Value) error
	isBool   bool
	typeName string
	defValue string
}

type boolFlag interface {
	IsBoolFlag() bool
}

var durationType = reflect.TypeOf(time.Duration(0))

func getFieldSetter(fieldValue reflect.Value) (fieldSetter, error) {
	valueType := fieldValue.Type()

	if valueType.Kind() == reflect.Ptr {
		if parse := getPrimitiveParser(valueType.Elem()); parse != nil {
			return fieldSetter{
				set: func(value cmdargs.Value) error {
					valueToParsePtr := reflect.New(valueType.Elem())
					if err := parse(valueToParsePtr.Elem(), value); err != nil {
						return err
					}
					fieldValue.Set(valueToParsePtr)
					return nil
				},
				isBool:   valueType.Elem().Kind() == reflect.Bool,
				typeName: getTypeName(valueType.Elem()),
				defValue: getDefValue(fieldValue),
			}, nil
		}
	}

	if parse := getPrimitiveParser(valueType); parse != nil {
		return fieldSetter{
			set: func(value cmdargs.Value) error {
				return parse(fieldValue, value)
			},
			isBool:   valueType.Kind() == reflect.Bool,
			typeName: getTypeName(valueType),
			defValue: getDefValue(fieldValue),
		}, nil
	}

	if flagValue, isFlagValue := addrInterface(fieldValue).(flag.Value); isFlagValue {
		isBool := false
		if bf, ok := flagValue.(boolFlag); ok {
			isBool = bf.IsBoolFlag()
		}
		return fieldSetter{
			set: func(value cmdargs.Value) error {
				if value.IsFlag() && !isBool {
					return ErrMissingValue
				}
				return flagValue.Set(value.String())
			},
			isBool:   isBool,
			typeName: "value",
			defValue: flagValue.String(),
		}, nil
	}

	if textUnmarshaler, ok := addrInterface(fieldValue).(encoding.TextUnmarshaler); ok {
		if valueType.Kind() == reflect.Ptr && fieldValue.IsNil() {
			return fieldSetter{}, errors.New("implements encoding.TextUnmarshaler but is nil")
		}
		return fieldSetter{
			set: func(value cmdargs.Value) error {
				if value.IsFlag() {
					return ErrMissingValue
				}
				return textUnmarshaler.UnmarshalText([]byte(value.Text()))
			},
			typeName: "value",
		}, nil
	}

	if fnc, ok := fieldValue.Interface().(func(string) error); ok {
		if fnc == nil {
			return fieldSetter{}, errors.New("func is nil")
		}
		return fieldSetter{
			set: func(value cmdargs.Value) error {
				return fnc(value.String())
			},
			typeName: "value",
		}, nil
	}

	return fieldSetter{}, fmt.Errorf("unsupported field type %s", valueType.String())
}

// addrInterface returns a pointer to the value if it's addressable, so that methods
// with pointer receivers are taken into account
func addrInterface(value reflect.Value) any {
	if value.Kind() != reflect.Ptr && value.CanAddr() {
		return value.Addr().Interface()
	}
	return value.Interface()
}

type primitiveParser func(target reflect.Value, value cmdargs.Value) error

func getPrimitiveParser(valueType reflect.Type) primitiveParser {
	switch valueType.Kind() {
	case reflect.Bool:
		return func(target reflect.Value, value cmdargs.Value) error {
			if value.IsFlag() {
				target.SetBool(true)
				return nil
			}
			b, err := strconv.ParseBool(value.Text())
			if err != nil {
				return err
			}
			target.SetBool(b)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if valueType == durationType {
			return textParser(func(target reflect.Value, text string) error {
				d, err := time.ParseDuration(text)
				if err != nil {
					return err
				}
				target.SetInt(int64(d))
				return nil
			})
		}
		return textParser(func(target reflect.Value, text string) error {
			n, err := strconv.ParseInt(text, 0, valueType.Bits())
			if err != nil {
				return err
			}
			target.SetInt(n)
			return nil
		})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return textParser(func(target reflect.Value, text string) error {
			n, err := strconv.ParseUint(text, 0, valueType.Bits())
			if err != nil {
				return err
			}
			target.SetUint(n)
			return nil
		})
	case reflect.Float32, reflect.Float64:
		return textParser(func(target reflect.Value, text string) error {
			f, err := strconv.ParseFloat(text, valueType.Bits())
			if err != nil {
				return err
			}
			target.SetFloat(f)
			return nil
		})
	case reflect.String:
		return textParser(func(target reflect.Value, text string) error {
			target.SetString(text)
			return nil
		})
	default:
		return nil
	}
}

func textParser(parse func(target reflect.Value, text string) error) primitiveParser {
	return func(target reflect.Value, value cmdargs.Value) error {
		if value.IsFlag() {
			return ErrMissingValue
		}
		return parse(target, value.Text())
	}
}

func getTypeName(valueType reflect.Type) string {
	switch {
	case valueType == durationType:
		return "duration"
	case valueType.Kind() == reflect.Bool:
		return ""
	default:
		return valueType.Kind().String()
	}
}

func getDefValue(fieldValue reflect.Value) string {
	if fieldValue.Kind() == reflect.Ptr {
		if fieldValue.IsNil() {
			return ""
		}
		fieldValue = fieldValue.Elem()
	}
	if fieldValue.IsZero() {
		return ""
	}
	return fmt.Sprint(fieldValue.Interface())
}
