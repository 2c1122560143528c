package store

import (
	"context"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// NotificationState holds the user's notification list.
type NotificationState struct {
	Notifications []domain.Notification
	Status        Status
	Err           string
}

// FetchNotifications replaces the notification list.
func (s *Store) FetchNotifications(ctx context.Context) error {
	n := s.begin(opNotificationList, func(st *State) {
		st.Notification.Status = StatusLoading
		st.Notification.Err = ""
	})

	list, err := s.api.ListNotifications(ctx)
	if err != nil {
		s.settle(opNotificationList, n, func(st *State) {
			st.Notification.Status = StatusFailed
			st.Notification.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.settle(opNotificationList, n, func(st *State) {
		st.Notification.Status = StatusSucceeded
		st.Notification.Notifications = list
		st.Notification.Err = ""
	})
	return nil
}

// MarkNotificationRead is the one optimistic write in the client: the
// flag flips locally before the PATCH, and rolls back to its previous
// value if the server rejects it.
func (s *Store) MarkNotificationRead(ctx context.Context, id int) error {
	var prev *bool
	s.mutate(func(st *State) {
		for i := range st.Notification.Notifications {
			if st.Notification.Notifications[i].ID == id {
				v := st.Notification.Notifications[i].IsRead
				prev = &v
				st.Notification.Notifications[i].IsRead = true
				break
			}
		}
	})

	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		s.mutate(func(st *State) {
			if prev != nil {
				for i := range st.Notification.Notifications {
					if st.Notification.Notifications[i].ID == id {
						st.Notification.Notifications[i].IsRead = *prev
						break
					}
				}
			}
			st.Notification.Err = api.ErrorMessage(err)
		})
		return err
	}
	return nil
}
