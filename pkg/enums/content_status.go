package enums

// ContentStatus controls storefront visibility for catalog entities.
type ContentStatus string

const (
	ContentStatusPublished ContentStatus = "published"
	ContentStatusDraft     ContentStatus = "draft"
)

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusPublished, ContentStatusDraft:
		return true
	default:
		return false
	}
}
