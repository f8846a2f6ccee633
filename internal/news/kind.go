package news

// Kind selects the layout of a news detail page.
type Kind string

const (
	KindPublication Kind = "publication"
	KindAdmission   Kind = "admission"
	KindGraduation  Kind = "graduation"
	KindAward       Kind = "award"
	KindCareer      Kind = "career"
	KindService     Kind = "service"
	KindMedia       Kind = "media"
	KindGeneric     Kind = "generic"
)

// Kinds lists every layout, the generic fallback last.
var Kinds = []Kind{
	KindPublication, KindAdmission, KindGraduation, KindAward,
	KindCareer, KindService, KindMedia, KindGeneric,
}

// ParseKind maps a news "type" tag to a Kind. Unknown tags are generic.
func ParseKind(tag string) Kind {
	for _, k := range Kinds {
		if string(k) == tag {
			return k
		}
	}
	return KindGeneric
}

// Badge returns the type label shown next to the date. Generic news has none.
func (k Kind) Badge() string {
	switch k {
	case KindPublication:
		return "Publication"
	case KindAdmission:
		return "Admission"
	case KindGraduation:
		return "Graduation"
	case KindAward:
		return "Award"
	case KindCareer:
		return "Career"
	case KindService:
		return "Service"
	case KindMedia:
		return "Media"
	default:
		return ""
	}
}
