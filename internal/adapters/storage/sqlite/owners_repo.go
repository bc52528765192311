package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func (r *OwnersRepo) FindByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name = ?
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
		WHERE id = ?
	`, id)

	o, err := scanOwner(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnersRepo) Save(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	if o.ID != nil {
		res, err := r.db.ExecContext(ctx, `
			UPDATE owners
			SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ?
			WHERE id = ?
		`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone, *o.ID)
		if err != nil {
			return owners.Owner{}, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return o, nil
		}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (first_name, last_name, address, city, telephone)
		VALUES (?, ?, ?, ?, ?)
	`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
	if err != nil {
		return owners.Owner{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return owners.Owner{}, err
	}
	o.ID = owners.IntPtr(int(id))
	return o, nil
}

func scanOwner(s interface{ Scan(dest ...any) error }) (owners.Owner, error) {
	var o owners.Owner
	var id int64
	if err := s.Scan(&id, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		return owners.Owner{}, err
	}
	o.ID = owners.IntPtr(int(id))
	return o, nil
}
