package conargs

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/cardinalby/go-console-args/stdutil"
)

// fieldInfo contains info about a struct field that should be handled by Binder
type fieldInfo struct {
	fieldName    string
	namedArgRole *namedArgRole
	setter       fieldSetter
	// argPathTag or argRestTag for []string fields receiving unnamed args
	unnamedArgsTag string
	fieldValue     reflect.Value
}

// collectFieldsInfoRecursive collects info about all fields of the given struct including nested
// structs. It validates the types of the fields and their tags and returns an error if any of them
// is invalid.
func collectFieldsInfoRecursive(
	structValue reflect.Value,
	parentArgPrefix string,
	parentUsagePrefix string,
	parentFieldName string,
	ignoredFields map[unsafe.Pointer]struct{},
	argsToIgnore stdutil.FormalTagNames, // to be filled
) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		fieldVal := structValue.Field(i)
		field := sValType.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)
		fieldRole, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, fieldName, err)
		}
		if fieldRole == nil {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": unexported`, fieldName, fieldRole.getRoleTagName())
		}
		_, isIgnored := ignoredFields[fieldVal.Addr().UnsafePointer()]
		fieldInfos, err := collectFieldInfo(
			fieldVal,
			fieldName,
			parentArgPrefix,
			parentUsagePrefix,
			fieldRole,
			ignoredFields,
			argsToIgnore,
			isIgnored,
		)
		if err != nil {
			return nil, err
		}
		res = append(res, fieldInfos...)
	}
	return res, nil
}

func collectFieldInfo(
	fieldValue reflect.Value,
	fieldName string,
	parentArgPrefix string,
	parentUsagePrefix string,
	fieldRole fieldRole,
	ignoredFields map[unsafe.Pointer]struct{},
	argsToIgnore stdutil.FormalTagNames,
	isIgnored bool,
) (res []fieldInfo, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf(`field "%s" tagged with "%s": %w`, fieldName, fieldRole.getRoleTagName(), err)
		}
	}()

	switch role := fieldRole.(type) {
	case nestedStructRole:
		if fieldValue.Kind() != reflect.Struct {
			return nil, fmt.Errorf("struct expected, got %s", fieldValue.Type().String())
		}
		return collectFieldsInfoRecursive(
			fieldValue,
			parentArgPrefix+role.argPrefix,
			parentUsagePrefix+role.usagePrefix,
			fieldName,
			ignoredFields,
			argsToIgnore,
		)
	case unnamedArgsRole:
		if fieldValue.Type() != reflect.TypeOf([]string(nil)) {
			return nil, fmt.Errorf("[]string expected, got %s", fieldValue.Type().String())
		}
		if isIgnored {
			return nil, nil
		}
		return []fieldInfo{{
			fieldName:      fieldName,
			unnamedArgsTag: role.roleTagName,
			fieldValue:     fieldValue,
		}}, nil
	case namedArgRole:
		role = role.withPrefixes(parentArgPrefix, parentUsagePrefix)
		if isIgnored {
			for _, argName := range role.argNames {
				if _, has := argsToIgnore[argName]; has {
					return nil, fmt.Errorf(`%w: "%s"`, ErrArgRedefined, argName)
				}
				argsToIgnore[argName] = isBoolField(fieldValue)
			}
			return nil, nil
		}
		setter, err := getFieldSetter(fieldValue)
		if err != nil {
			return nil, err
		}
		return []fieldInfo{{
			fieldName:    fieldName,
			namedArgRole: &role,
			setter:       setter,
			fieldValue:   fieldValue,
		}}, nil
	}
	return nil, nil
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return fmt.Sprintf("%s.%s", parentFieldName, fieldName)
}

func isBoolField(value reflect.Value) bool {
	if value.Type().Kind() == reflect.Bool {
		return true
	}
	if value.Type().Kind() == reflect.Ptr {
		return value.Type().Elem().Kind() == reflect.Bool
	}
	return false
}
