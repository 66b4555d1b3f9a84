package postgres

import (
	"clip-share/internal/core/port"
	"context"
	"database/sql"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) VideoRepo() port.VideoRepository {
	if u.tx != nil {
		return NewSqlVideoRepository(u.tx)
	}
	return NewSqlVideoRepository(u.db)
}

func (u *sqlUnitOfWork) LinkRepo() port.LinkRepository {
	if u.tx != nil {
		return NewSqlLinkRepository(u.tx)
	}
	return NewSqlLinkRepository(u.db)
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
