package tgrouter

type Route struct {
	filter   Filter[any]
	handlers Handler
	rtype    Type
}

type Type int

const (
	MessageRoute Type = iota + 1
	ConversationRoute
	CallbackRoute
)

func (t Type) String() string {
	switch t {
	case MessageRoute:
		return "message"
	case ConversationRoute:
		return "conversation"
	case CallbackRoute:
		return "callback"
	default:
		return "unknown"
	}
}

func newRoute[F FilterType](filter Filter[F], handlers Handler) Route {
	r := Route{
		filter:   Filter[any](filter),
		handlers: handlers,
		rtype:    MessageRoute,
	}

	switch any(filter).(type) {
	case Filter[StateFilter]:
		r.rtype = ConversationRoute
	case Filter[CallbackFilter]:
		r.rtype = CallbackRoute
	}

	return r
}
