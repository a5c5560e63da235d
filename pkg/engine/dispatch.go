package engine

import "strings"

// Command names understood by Dispatch.
const (
	CommandItems   = "items"
	CommandGet     = "get"
	CommandVal     = "val"
	CommandSet     = "set"
	CommandClear   = "clear"
	CommandAdd     = "add"
	CommandRemove  = "remove"
	CommandUpdate  = "update"
	CommandReorder = "reorder"
	CommandEnable  = "enable"
	CommandDisable = "disable"
	CommandDestroy = "destroy"
)

// Dispatch runs a command by name, the string surface used by markup-driven
// hosts. Names starting with "_", unknown names and arguments of the wrong
// type are rejected with ok=false; Dispatch never panics. A trailing bool
// argument is taken as the notify flag for mutations.
func (l *List) Dispatch(command string, args ...any) (result any, ok bool) {
	command = strings.TrimSpace(command)
	if command == "" || strings.HasPrefix(command, "_") || l == nil {
		return nil, false
	}

	args, opts := splitNotify(command, args)

	switch strings.ToLower(command) {
	case CommandItems, CommandGet:
		return l.Items(), true
	case CommandVal:
		if len(args) == 0 {
			raw, err := l.Val()
			return raw, err == nil
		}
		raw, isString := args[0].(string)
		if !isString {
			return nil, false
		}
		return nil, l.SetVal(raw, opts...) == nil
	case CommandSet:
		var candidate any
		if len(args) > 0 {
			candidate = args[0]
		}
		return nil, l.SetAll(candidate, opts...) == nil
	case CommandClear:
		return nil, l.Clear(opts...) == nil
	case CommandAdd:
		if len(args) == 0 {
			return nil, false
		}
		return nil, l.dispatchAdd(args[0], opts) == nil
	case CommandRemove:
		index, isInt := argAt[int](args, 0)
		if !isInt {
			return nil, false
		}
		return nil, l.Remove(index, opts...) == nil
	case CommandUpdate:
		index, isInt := argAt[int](args, 0)
		if !isInt || len(args) < 2 {
			return nil, false
		}
		return nil, l.Update(index, args[1], opts...) == nil
	case CommandReorder:
		source, okSource := argAt[int](args, 0)
		target, okTarget := argAt[int](args, 1)
		if !okSource || !okTarget {
			return nil, false
		}
		return nil, l.Reorder(source, target, opts...) == nil
	case CommandEnable:
		l.Enable()
		return nil, true
	case CommandDisable:
		l.Disable()
		return nil, true
	case CommandDestroy:
		l.Destroy()
		return nil, true
	default:
		return nil, false
	}
}

func (l *List) dispatchAdd(value any, opts []MutationOption) error {
	switch v := value.(type) {
	case Keyed:
		return l.AddKeyed(v, opts...)
	case map[string]any:
		return l.AddKeyed(KeyedFromMap(v), opts...)
	case []any:
		return l.Add(v, opts...)
	default:
		return l.Add([]any{v}, opts...)
	}
}

// splitNotify peels a trailing bool notify flag off mutation arguments.
// "update" takes an arbitrary item as its second argument, so the flag is
// only recognised in third position there.
func splitNotify(command string, args []any) ([]any, []MutationOption) {
	if len(args) == 0 {
		return args, nil
	}
	minArgs := map[string]int{
		CommandVal:     1,
		CommandSet:     1,
		CommandClear:   0,
		CommandAdd:     1,
		CommandRemove:  1,
		CommandUpdate:  2,
		CommandReorder: 2,
	}
	required, mutating := minArgs[strings.ToLower(command)]
	if !mutating || len(args) <= required {
		return args, nil
	}
	notify, isBool := args[len(args)-1].(bool)
	if !isBool {
		return args, nil
	}
	return args[:len(args)-1], []MutationOption{Notify(notify)}
}

// Group applies commands to several lists, mirroring a multi-element
// selection: reads go to the first list, everything else to all of them.
type Group []*List

// Dispatch runs command on the group. Reads return the first list's result;
// other commands report ok when every list accepted them.
func (g Group) Dispatch(command string, args ...any) (any, bool) {
	if len(g) == 0 {
		return nil, false
	}
	name := strings.ToLower(strings.TrimSpace(command))
	if name == CommandItems || name == CommandGet || (name == CommandVal && len(args) == 0) {
		return g[0].Dispatch(command, args...)
	}

	ok := true
	for _, list := range g {
		if _, accepted := list.Dispatch(command, args...); !accepted {
			ok = false
		}
	}
	return nil, ok
}
