package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// MessagesService wraps direct messages. List responses use the
// {items, total} envelope; attachments upload under the media field.
type MessagesService service

const messagesShape = ShapeItemsTotal

// MessageListOptions filters the conversation view.
type MessageListOptions struct {
	WithUserID uuid.UUID
	Unread     bool
	Page       int
	PerPage    int
}

func (o *MessageListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.WithUserID != uuid.Nil {
		q.Set("withUserId", o.WithUserID.String())
	}
	if o.Unread {
		q.Set("unread", "true")
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *MessagesService) List(ctx context.Context, opts *MessageListOptions) (*Page[Message], error) {
	return getPage[Message](ctx, s.client, "/messages", opts.values(), messagesShape)
}

// Send delivers a message, switching to multipart when attachments are
// present.
func (s *MessagesService) Send(ctx context.Context, recipientID uuid.UUID, body string, attachments []Upload) (*Message, error) {
	var m Message
	if len(attachments) == 0 {
		payload := map[string]string{"recipientId": recipientID.String(), "body": body}
		if err := s.client.postJSON(ctx, "/messages", payload, &m); err != nil {
			return nil, err
		}
		return &m, nil
	}

	form := NewForm().
		Set("recipientId", recipientID.String()).
		Set("body", body).
		AddFiles(uploadField("messages.media"), attachments)
	if err := s.client.sendForm(ctx, "POST", "/messages", form, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkRead marks one message read.
func (s *MessagesService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.client.patchJSON(ctx, "/messages/"+id.String()+"/read", nil, nil)
}

func (s *MessagesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/messages/"+id.String())
}
