package linkedin

import (
	"context"
	"fmt"

	"casahub/internal/domain/notification"
)

// ApproverDirectory lists the users who review submitted posts.
type ApproverDirectory interface {
	ApproverIDs(ctx context.Context) ([]string, error)
}

// NotificationSender is the slice of the notification service this
// adapter needs.
type NotificationSender interface {
	Notify(ctx context.Context, userID string, msg notification.Message) error
	NotifyMany(ctx context.Context, userIDs []string, msg notification.Message) error
}

// notifierAdapter implements Notifier on top of the notification service
// and the user directory.
type notifierAdapter struct {
	sender    NotificationSender
	approvers ApproverDirectory
}

func NewNotifier(sender NotificationSender, approvers ApproverDirectory) Notifier {
	return &notifierAdapter{sender: sender, approvers: approvers}
}

func (n *notifierAdapter) PostSubmitted(ctx context.Context, p *Post) error {
	ids, err := n.approvers.ApproverIDs(ctx)
	if err != nil {
		return err
	}

	actionURL := fmt.Sprintf("/linkedin/posts/%s", p.ID)
	return n.sender.NotifyMany(ctx, ids, notification.Message{
		Type:      notification.TypeApprovalNeeded,
		Title:     "Post Approval Required",
		Body:      fmt.Sprintf("LinkedIn post %q is waiting for your approval", excerpt(p.Content, 50)),
		Priority:  notification.PriorityMedium,
		ActionURL: &actionURL,
	})
}

func (n *notifierAdapter) PostReviewed(ctx context.Context, p *Post, approved bool, feedback string) error {
	msg := notification.Message{
		Type:     notification.TypeApprovalNeeded,
		Priority: notification.PriorityMedium,
	}
	if approved {
		msg.Title = "Post Approved"
		msg.Body = "Your LinkedIn post has been approved and is ready for publishing"
	} else {
		msg.Title = "Post Rejected"
		if feedback == "" {
			feedback = "Please review and make necessary changes."
		}
		msg.Body = fmt.Sprintf("Your LinkedIn post was rejected. %s", feedback)
	}
	return n.sender.Notify(ctx, p.CreatedBy, msg)
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
