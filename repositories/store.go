package repositories

import (
	"carrot-server/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pgStore struct {
	db *gorm.DB
	// tx marks a transaction-bound store; reads take FOR UPDATE locks
	tx bool
}

func NewPgStore(database db.Database) Store {
	return &pgStore{db: database.GetDB()}
}

func (s *pgStore) Users() UserRepository            { return &userPgRepository{s} }
func (s *pgStore) Todos() TodoRepository            { return &todoPgRepository{s} }
func (s *pgStore) Items() ItemRepository            { return &itemPgRepository{s} }
func (s *pgStore) Inventories() InventoryRepository { return &inventoryPgRepository{s} }

// reader is the handle row reads go through; inside a transaction it adds
// a FOR UPDATE lock so the read-check-write sequence holds the row.
func (s *pgStore) reader() *gorm.DB {
	if s.tx {
		return s.db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return s.db
}

func (s *pgStore) Atomically(fn func(Store) error) error {
	if s.tx {
		// already inside a transaction; reuse it
		return fn(s)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx, tx: true})
	})
}
