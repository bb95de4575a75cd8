package sqlite

import (
	"slices"
	"sync"
	"time"

	"smokebreak/internal/domain/repository"
	"smokebreak/internal/errors"

	"gorm.io/gorm"
)

// ChangeFeed turns local writes into repository.ChangeEvent notifications.
// Writes inside a transaction are held back until the transaction commits.
type ChangeFeed struct {
	mu      sync.Mutex
	subs    map[*feedSubscription]struct{}
	pending map[gorm.ConnPool]map[string]struct{}
}

type feedSubscription struct {
	tables []string
	ch     chan repository.ChangeEvent
}

// NewChangeFeed creates an empty feed.
func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{
		subs:    make(map[*feedSubscription]struct{}),
		pending: make(map[gorm.ConnPool]map[string]struct{}),
	}
}

// Subscribe implements repository.ChangeFeed.
func (f *ChangeFeed) Subscribe(tables ...string) (<-chan repository.ChangeEvent, func()) {
	sub := &feedSubscription{
		tables: tables,
		ch:     make(chan repository.ChangeEvent, 1),
	}

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, sub)
			f.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish notifies subscribers of the given tables. A subscriber whose buffer is
// full already has an undelivered event and is skipped.
func (f *ChangeFeed) Publish(tables ...string) {
	now := time.Now()

	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs {
		for _, table := range tables {
			if len(sub.tables) > 0 && !slices.Contains(sub.tables, table) {
				continue
			}

			select {
			case sub.ch <- repository.ChangeEvent{Table: table, At: now}:
			default:
			}

			break
		}
	}
}

// Register hooks the feed into GORM's create, update and delete chains.
func (f *ChangeFeed) Register(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().After("gorm:create").Register("changefeed:after_create", f.afterWrite); err != nil {
		return errors.Wrap(err, "failed to register create change feed")
	}
	if err := cb.Update().After("gorm:update").Register("changefeed:after_update", f.afterWrite); err != nil {
		return errors.Wrap(err, "failed to register update change feed")
	}
	if err := cb.Delete().After("gorm:delete").Register("changefeed:after_delete", f.afterWrite); err != nil {
		return errors.Wrap(err, "failed to register delete change feed")
	}

	return nil
}

func (f *ChangeFeed) afterWrite(db *gorm.DB) {
	if db.Error != nil || db.RowsAffected == 0 || db.Statement.Table == "" {
		return
	}

	tables := []string{db.Statement.Table}
	if isCascadeParent(db.Statement.Table) && isDelete(db) {
		tables = append(tables, repository.TableMembers)
	}
	if db.Statement.Table == repository.TableBreakInvitations && isDelete(db) {
		tables = append(tables, repository.TableBreakSessions)
	}

	if _, inTx := db.Statement.ConnPool.(gorm.TxCommitter); inTx && f.hold(db.Statement.ConnPool, tables) {
		return
	}

	f.Publish(tables...)
}

func (f *ChangeFeed) begin(tx gorm.ConnPool) {
	f.mu.Lock()
	f.pending[tx] = make(map[string]struct{})
	f.mu.Unlock()
}

func (f *ChangeFeed) hold(tx gorm.ConnPool, tables []string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	held, ok := f.pending[tx]
	if !ok {
		return false
	}
	for _, table := range tables {
		held[table] = struct{}{}
	}

	return true
}

// finish releases held events; they are published only when committed is true.
func (f *ChangeFeed) finish(tx gorm.ConnPool, committed bool) {
	f.mu.Lock()
	held := f.pending[tx]
	delete(f.pending, tx)
	f.mu.Unlock()

	if !committed || len(held) == 0 {
		return
	}

	tables := make([]string, 0, len(held))
	for table := range held {
		tables = append(tables, table)
	}
	slices.Sort(tables)
	f.Publish(tables...)
}

func isCascadeParent(table string) bool {
	return table == repository.TableUsers || table == repository.TableGroups
}

func isDelete(db *gorm.DB) bool {
	_, ok := db.Statement.Clauses["DELETE"]

	return ok
}
