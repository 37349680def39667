package ast

// Visibility описывает доступность элемента (private/public).
type Visibility uint8

const (
	VisInherited Visibility = iota
	VisPublic
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "pub"
	default:
		return ""
	}
}

// prefix returns "pub " or "".
func (v Visibility) prefix() string {
	if v == VisPublic {
		return "pub "
	}
	return ""
}
