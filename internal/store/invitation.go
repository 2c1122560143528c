package store

import (
	"context"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/domain"
)

// InvitationState holds the interviewee's open invitations. The fetch
// keeps only pending ones; an invitation accepted during the session
// stays visible with its new status.
type InvitationState struct {
	Invitations []domain.Invitation
	Status      Status
	Err         string
}

const invitationsPerPage = 10

// FetchInvitations replaces the invitation list with the pending subset
// of the first page.
func (s *Store) FetchInvitations(ctx context.Context) error {
	n := s.begin(opInvitationList, func(st *State) {
		st.Invitation.Status = StatusLoading
		st.Invitation.Err = ""
	})

	list, err := s.api.ListInvitations(ctx, 1, invitationsPerPage)
	if err != nil {
		s.settle(opInvitationList, n, func(st *State) {
			st.Invitation.Status = StatusFailed
			st.Invitation.Err = api.ErrorMessage(err)
		})
		return err
	}

	pending := make([]domain.Invitation, 0, len(list))
	for _, inv := range list {
		if inv.Status == domain.InvitationPending {
			pending = append(pending, inv)
		}
	}

	s.settle(opInvitationList, n, func(st *State) {
		st.Invitation.Status = StatusSucceeded
		st.Invitation.Invitations = pending
		st.Invitation.Err = ""
	})
	return nil
}

// CreateInvitations invites interviewees to an assessment. The server
// responds with an acknowledgement, not invitation records, so there is
// nothing to merge; recruiters re-fetch to see the result.
func (s *Store) CreateInvitations(ctx context.Context, assessmentID int, intervieweeIDs []int) error {
	if err := s.api.CreateInvitations(ctx, assessmentID, intervieweeIDs); err != nil {
		s.mutate(func(st *State) {
			st.Invitation.Err = api.ErrorMessage(err)
		})
		return err
	}
	return nil
}

// AcceptInvitation flips the matching invitation to accepted, leaving
// every other record and the list order untouched.
func (s *Store) AcceptInvitation(ctx context.Context, id int) error {
	s.mutate(func(st *State) {
		st.Invitation.Err = ""
	})

	inv, err := s.api.AcceptInvitation(ctx, id)
	if err != nil {
		s.mutate(func(st *State) {
			st.Invitation.Err = api.ErrorMessage(err)
		})
		return err
	}

	s.mutate(func(st *State) {
		for i := range st.Invitation.Invitations {
			if st.Invitation.Invitations[i].ID == inv.ID {
				st.Invitation.Invitations[i].Status = domain.InvitationAccepted
				break
			}
		}
	})
	return nil
}
