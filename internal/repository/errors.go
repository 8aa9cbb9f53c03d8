package repository

import "errors"

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrDuplicateContact     = errors.New("user already exists")
	ErrDuplicateName        = errors.New("user name already taken")
	ErrUserNotRegistered    = errors.New("user is not registered")
	ErrTooFewMembers        = errors.New("a group needs at least 2 members")
	ErrGroupNotFound        = errors.New("group does not exist")
	ErrNotAMember           = errors.New("you are not allowed to send message")
	ErrMessageNotFound      = errors.New("message does not exist")
	ErrAlreadySent          = errors.New("message has already been sent")
	ErrNotAuthorized        = errors.New("approver does not have rights")
	ErrNotAParticipant      = errors.New("user is not a participant")
	ErrUserNotFound         = errors.New("user not found")
	ErrCannotRemoveAdmin    = errors.New("cannot remove admin")
	ErrInsufficientMessages = errors.New("k is greater than the number of messages")
)
