package conargs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cardinalby/go-console-args/stdutil"
)

const (
	argNameTag        = "arg"
	argNamesTag       = "args"
	argRequiredTag    = "argRequired"
	argPathTag        = "argPath"
	argRestTag        = "argRest"
	argUsageTag       = "argUsage"
	argUsagePrefixTag = "argUsagePrefix"
	argPrefixTag      = "argPrefix"
)

type fieldRole interface {
	getRoleTagName() string
}

type namedArgRole struct {
	argNames    []string
	usage       string
	roleTagName string
	isRequired  bool
}

func (r namedArgRole) getRoleTagName() string {
	return r.roleTagName
}

func (r namedArgRole) withPrefixes(namePrefix string, usagePrefix string) namedArgRole {
	if namePrefix != "" {
		prefixed := make([]string, len(r.argNames))
		for i, name := range r.argNames {
			prefixed[i] = namePrefix + name
		}
		r.argNames = prefixed
	}
	r.usage = usagePrefix + r.usage
	return r
}

// unnamedArgsRole is a []string field receiving the command path or all unnamed values
type unnamedArgsRole struct {
	roleTagName string
}

func (r unnamedArgsRole) getRoleTagName() string {
	return r.roleTagName
}

type nestedStructRole struct {
	argPrefix   string
	usagePrefix string
}

func (r nestedStructRole) getRoleTagName() string {
	return argPrefixTag
}

func getFieldRole(field reflect.StructField) (fieldRole, error) {
	tags := field.Tag

	argName := tags.Get(argNameTag)
	if argName == "-" {
		argName = ""
	}
	argName = stdutil.FlagName(argName)
	argNames := getArgNames(tags)

	isPath, _, err := getBoolTag(tags, argPathTag)
	if err != nil {
		return nil, err
	}
	isRest, _, err := getBoolTag(tags, argRestTag)
	if err != nil {
		return nil, err
	}
	isRequired, hasRequired, err := getBoolTag(tags, argRequiredTag)
	if err != nil {
		return nil, err
	}
	argPrefix, hasArgPrefix := tags.Lookup(argPrefixTag)

	hasArgName := argName != ""
	hasArgNames := len(argNames) > 0
	usage, hasUsage := tags.Lookup(argUsageTag)
	usagePrefix, hasUsagePrefix := tags.Lookup(argUsagePrefixTag)

	switch trueCount(hasArgName, hasArgNames, hasArgPrefix, isPath, isRest) {
	case 0:
		if hasUsage || hasRequired || hasUsagePrefix {
			return nil, fmt.Errorf(
				`"%s", "%s" and "%s" tags can't be used without "%s" or "%s" tags`,
				argUsageTag, argRequiredTag, argUsagePrefixTag, argNameTag, argNamesTag,
			)
		}
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf(
			`only one of "%s", "%s", "%s", "%s", "%s" tags can be used`,
			argNameTag, argNamesTag, argPrefixTag, argPathTag, argRestTag,
		)
	}

	if hasUsagePrefix && !hasArgPrefix {
		return nil, fmt.Errorf(`"%s" tag can be used only with "%s" tag`, argUsagePrefixTag, argPrefixTag)
	}

	if hasArgName || hasArgNames {
		role := namedArgRole{
			usage:      usage,
			isRequired: isRequired,
		}
		if hasArgName {
			role.argNames = []string{argName}
			role.roleTagName = argNameTag
		} else {
			role.argNames = argNames
			role.roleTagName = argNamesTag
		}
		return role, nil
	}

	if hasUsage || hasRequired {
		return nil, fmt.Errorf(
			`"%s" and "%s" tags can be used only with "%s" or "%s" tags`,
			argUsageTag, argRequiredTag, argNameTag, argNamesTag,
		)
	}

	switch {
	case hasArgPrefix:
		return nestedStructRole{
			argPrefix:   argPrefix,
			usagePrefix: usagePrefix,
		}, nil
	case isPath:
		return unnamedArgsRole{roleTagName: argPathTag}, nil
	default:
		return unnamedArgsRole{roleTagName: argRestTag}, nil
	}
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}

// getArgNames splits "v, verbose" and trims the dashes: names are matched without them
func getArgNames(tags reflect.StructTag) []string {
	namesStr := tags.Get(argNamesTag)
	if namesStr == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(namesStr, ",") {
		if trimmed := stdutil.FlagName(strings.TrimSpace(name)); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func trueCount(values ...bool) (res int) {
	for _, v := range values {
		if v {
			res++
		}
	}
	return res
}
