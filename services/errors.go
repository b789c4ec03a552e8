// file: services/errors.go
package services

import "errors"

// 领域错误。controller 层用 errors.Is 翻译成 HTTP 状态码：
// NotFound -> 404, Conflict -> 409, 状态非法 -> 400
var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrContestNotFound    = errors.New("contest not found")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrUserNotFound       = errors.New("no valid member found")
	ErrTeamNameExists     = errors.New("team name already exists")
	ErrEmptyRoster        = errors.New("member list is empty")
	ErrRosterWouldBeEmpty = errors.New("operation would leave team without members")
)
