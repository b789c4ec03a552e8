// file: services/team_locks.go
package services

import "sync"

// 队伍级互斥锁表。同一队伍的成员变更、解题记录、删除互斥串行，
// 不同队伍互不干扰。锁条目不回收，队伍数量级下无所谓
var teamLocks sync.Map

func lockTeam(teamID uint32) *sync.Mutex {
	mu, _ := teamLocks.LoadOrStore(teamID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
