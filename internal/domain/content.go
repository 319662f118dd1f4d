package domain

// Content is a post body. It carries no length invariant; callers escape
// HTML before construction, so the value never needs re-encoding on read.
type Content struct {
	value string
}

// NewContent wraps the raw input. Content has no validation rules.
func NewContent(value string) Content {
	return Content{value: value}
}

func (c Content) String() string {
	return c.value
}
