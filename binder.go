package conargs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/cardinalby/go-console-args/cmdargs"
	"github.com/cardinalby/go-console-args/stdutil"
)

var ErrArgRedefined = errors.New("argument redefined")
var ErrIsRequired = errors.New("argument is required")
var ErrMultipleAliases = errors.New("multiple aliases for the same argument are used")
var ErrUnknownArg = errors.New("unknown argument")

// boundArg is a named argument registered for a struct field
type boundArg struct {
	fieldName  string
	argNames   []string
	setter     fieldSetter
	usage      string
	isRequired bool
}

// registeredStruct contains instructions for binding arguments to a struct
type registeredStruct struct {
	namedArgs []*boundArg
	// field values that should be assigned with the command path
	pathFields []reflect.Value
	// field values that should be assigned with all unnamed values
	restFields []reflect.Value
}

// Binder assigns parsed arguments to the fields of registered structs.
//
//	type Options struct {
//		Verbose int      `args:"v,verbose" argUsage:"verbose level"`
//		Login   *string  `arg:"login" argRequired:"true"`
//		Files   []string `argRest:"true"`
//	}
//
// Argument names are matched without leading dashes: "-v", "--v" and "v=1" all
// match the "v" name.
type Binder struct {
	registered []registeredStruct

	// key is an argument name without dashes
	argNames map[string]*boundArg

	// names of ignored fields
	ignoredArgs stdutil.FormalTagNames

	ignoreUnknown               bool
	allowBindingMultipleAliases bool
}

func NewBinder() *Binder {
	return &Binder{
		argNames:    make(map[string]*boundArg),
		ignoredArgs: make(stdutil.FormalTagNames),
	}
}

// SetAllowBindingMultipleAliases sets the behavior of Bind() when multiple names
// assigned to the same field are passed.
// If `true`, the value of the last one is used.
// If `false`, Bind() returns an error.
// Default value is `false`.
func (b *Binder) SetAllowBindingMultipleAliases(allow bool) {
	b.allowBindingMultipleAliases = allow
}

// SetIgnoreUnknown sets the behavior of Bind() when named arguments that are not
// registered are passed.
// If `true`, they are ignored.
// If `false`, Bind() returns an error.
// Default value is `false`.
func (b *Binder) SetIgnoreUnknown(ignore bool) {
	b.ignoreUnknown = ignore
}

// Register registers the fields of the given struct pointer.
// `ignoredFields` is a slice of pointers to fields that should be ignored: arguments
// with their names are skipped by Bind() without errors
func (b *Binder) Register(p any, ignoredFields ...any) error {
	return b.RegisterWithPrefix(p, "", ignoredFields...)
}

// RegisterWithPrefix registers the fields of the given struct pointer with argument
// names prefixed with `argsPrefix`
func (b *Binder) RegisterWithPrefix(p any, argsPrefix string, ignoredFields ...any) error {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return err
	}
	ignoredFieldsMap, err := newIgnoredFieldsMap(ignoredFields)
	if err != nil {
		return fmt.Errorf("invalid ignoredFields: %w", err)
	}

	// collect fields info but don't register arguments until all fields are validated
	argsToIgnore := make(stdutil.FormalTagNames)
	fieldsInfo, err := collectFieldsInfoRecursive(
		structValue,
		stdutil.FlagName(argsPrefix),
		"",
		"",
		ignoredFieldsMap,
		argsToIgnore,
	)
	if err != nil {
		return err
	}

	newNames := make(map[string]*boundArg)
	isRegistered := func(name string) bool {
		_, inArgs := b.argNames[name]
		_, inNew := newNames[name]
		return inArgs || inNew || b.ignoredArgs.Has(name)
	}
	var reg registeredStruct
	for _, info := range fieldsInfo {
		switch {
		case info.unnamedArgsTag == argPathTag:
			reg.pathFields = append(reg.pathFields, info.fieldValue)
		case info.unnamedArgsTag == argRestTag:
			reg.restFields = append(reg.restFields, info.fieldValue)
		case info.namedArgRole != nil:
			ba := &boundArg{
				fieldName:  info.fieldName,
				argNames:   info.namedArgRole.argNames,
				setter:     info.setter,
				usage:      info.namedArgRole.usage,
				isRequired: info.namedArgRole.isRequired,
			}
			for _, name := range ba.argNames {
				if isRegistered(name) {
					return fmt.Errorf(`%w: "%s"`, ErrArgRedefined, name)
				}
				newNames[name] = ba
			}
			reg.namedArgs = append(reg.namedArgs, ba)
		}
	}
	for name := range argsToIgnore {
		if isRegistered(name) {
			return fmt.Errorf(`%w: "%s"`, ErrArgRedefined, name)
		}
	}

	// register only if all fields are valid
	for name, ba := range newNames {
		b.argNames[name] = ba
	}
	for name, isBool := range argsToIgnore {
		b.ignoredArgs[name] = isBool
	}
	b.registered = append(b.registered, reg)
	return nil
}

// Bind assigns the arguments to the fields of the registered structs. Fields of named
// arguments that are absent keep their values. All errors are collected and joined;
// unnamed args fields are assigned only if there are no errors
func (b *Binder) Bind(args *cmdargs.Store) error {
	var errs []error
	firstFoundNames := make(map[*boundArg]string)

	for entry := range args.Entries() {
		f, isFlag := entry.(cmdargs.FlagEntry)
		if !isFlag {
			continue
		}
		name := stdutil.FlagName(f.Name())
		ba, ok := b.argNames[name]
		if !ok {
			if !b.ignoreUnknown && !b.ignoredArgs.Has(name) {
				errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrUnknownArg, f.Name()))
			}
			continue
		}
		if firstName, found := firstFoundNames[ba]; found && firstName != name && !b.allowBindingMultipleAliases {
			errs = append(errs, fmt.Errorf(`%w: "%s" and "%s"`, ErrMultipleAliases, firstName, name))
			continue
		}
		firstFoundNames[ba] = name
		if err := ba.setter.set(f.Value()); err != nil {
			errs = append(errs, fmt.Errorf(`invalid value "%s" for argument "%s": %w`, f.Value(), f.Name(), err))
		}
	}

	for _, reg := range b.registered {
		for _, ba := range reg.namedArgs {
			if _, found := firstFoundNames[ba]; ba.isRequired && !found {
				errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrIsRequired, strings.Join(ba.argNames, `"/"`)))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	path := args.CommandPathSlice()
	var rest []string
	for i, v := range args.All() {
		if _, isNamed := args.LookupNameAt(i); !isNamed {
			rest = append(rest, v.String())
		}
	}
	for _, reg := range b.registered {
		for _, fieldValue := range reg.pathFields {
			fieldValue.Set(reflect.ValueOf(path))
		}
		for _, fieldValue := range reg.restFields {
			fieldValue.Set(reflect.ValueOf(rest))
		}
	}
	return nil
}

// Bind registers the struct in a new Binder and binds the arguments to it
func Bind(args *cmdargs.Store, p any, ignoredFields ...any) error {
	b := NewBinder()
	if err := b.Register(p, ignoredFields...); err != nil {
		return err
	}
	return b.Bind(args)
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	if val.IsNil() {
		return reflect.Value{}, errors.New("expected pointer to struct, got nil")
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct, got %T", p)
	}
	return res, nil
}

func newIgnoredFieldsMap(fields []any) (map[unsafe.Pointer]struct{}, error) {
	res := make(map[unsafe.Pointer]struct{})
	for i, field := range fields {
		val := reflect.ValueOf(field)
		if val.Kind() != reflect.Ptr {
			return nil, fmt.Errorf(`element %d: pointer expected, got %T`, i, field)
		}
		res[val.UnsafePointer()] = struct{}{}
	}
	return res, nil
}
