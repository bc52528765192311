package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) FindByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name = $1
		ORDER BY id ASC
	`, lastName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *OwnersRepo) FindByID(ctx context.Context, id int) (*owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id)

	o, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OwnersRepo) Save(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	if o.ID != nil {
		err := r.update(ctx, o)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return owners.Owner{}, err
		}
		// id desconocido: se inserta como nuevo
	}
	return r.insert(ctx, o)
}

func (r *OwnersRepo) insert(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (first_name, last_name, address, city, telephone)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.Telephone,
	).Scan(&id)
	if err != nil {
		return owners.Owner{}, err
	}
	o.ID = owners.IntPtr(id)
	return o, nil
}

func (r *OwnersRepo) update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			telephone = $6
		WHERE id = $1
	`,
		*o.ID,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.Telephone,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(s rowScanner) (owners.Owner, error) {
	var o owners.Owner
	var id int
	if err := s.Scan(
		&id,
		&o.FirstName,
		&o.LastName,
		&o.Address,
		&o.City,
		&o.Telephone,
	); err != nil {
		return owners.Owner{}, err
	}
	o.ID = owners.IntPtr(id)
	return o, nil
}
