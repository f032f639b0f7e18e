package dashboard

type ElementID string

const (
	ElementContainer       ElementID = "dashboard-container"
	ElementGenerateButton  ElementID = "quick-generate-btn"
	ElementApprovalsButton ElementID = "pending-approvals-btn"
	ElementApprovalsModal  ElementID = "pending-approvals-modal"
	ElementApprovalsList   ElementID = "pending-approvals-modal .approvals-list"
	ElementUpcomingPosts   ElementID = "upcoming-posts"
	ElementCalendarTicker  ElementID = "calendar-ticker"
	ElementTotalContent    ElementID = "total-content"
	ElementThisWeek        ElementID = "this-week"
	ElementApprovedContent ElementID = "approved-content"
	ElementApprovalRate    ElementID = "approval-rate"
	ElementPendingCount    ElementID = "pending-count"
	ElementPlatformsActive ElementID = "platforms-active"
)

func AllElements() []ElementID {
	return []ElementID{
		ElementContainer,
		ElementGenerateButton,
		ElementApprovalsButton,
		ElementApprovalsModal,
		ElementApprovalsList,
		ElementUpcomingPosts,
		ElementCalendarTicker,
		ElementTotalContent,
		ElementThisWeek,
		ElementApprovedContent,
		ElementApprovalRate,
		ElementPendingCount,
		ElementPlatformsActive,
	}
}

// Counters are the plain text elements written by the widgets load.
func Counters() []ElementID {
	return []ElementID{
		ElementTotalContent,
		ElementThisWeek,
		ElementApprovedContent,
		ElementApprovalRate,
		ElementPendingCount,
		ElementPlatformsActive,
	}
}

func (id ElementID) IsModal() bool {
	return id == ElementApprovalsModal
}

func (id ElementID) IsButton() bool {
	return id == ElementGenerateButton || id == ElementApprovalsButton
}

func ParseElements(ids []string) []ElementID {
	out := make([]ElementID, 0, len(ids))
	for _, id := range ids {
		out = append(out, ElementID(id))
	}
	return out
}

const (
	LabelGenerate   = "Quick Generate"
	LabelApprovals  = "Pending Approvals"
	LabelGenerating = "Generating..."
)

func defaultLabel(id ElementID) string {
	switch id {
	case ElementGenerateButton:
		return LabelGenerate
	case ElementApprovalsButton:
		return LabelApprovals
	default:
		return ""
	}
}
