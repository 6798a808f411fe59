package settings

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"taikin/taikin"

	"github.com/tidwall/buntdb"
)

type Repository interface {
	GetWorkDuration() (time.Duration, error)
	SaveWorkDuration(d time.Duration) error
	GetNotify() (bool, error)
	SaveNotify(on bool) error
}

func NewRepository(db *buntdb.DB) Repository {
	return &repository{db: db}
}

type repository struct {
	db *buntdb.DB
}

const (
	WorkDurationKey = "work_duration"
	NotifyKey       = "notify"
)

func (r *repository) GetWorkDuration() (time.Duration, error) {
	v, err := r.get(WorkDurationKey)
	if errors.Is(err, buntdb.ErrNotFound) {
		return taikin.DefaultWorkDuration, nil
	} else if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("stored %s is broken: %w", WorkDurationKey, err)
	}
	return d, nil
}

func (r *repository) SaveWorkDuration(d time.Duration) error {
	return r.set(WorkDurationKey, d.String())
}

func (r *repository) GetNotify() (bool, error) {
	v, err := r.get(NotifyKey)
	if errors.Is(err, buntdb.ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("stored %s is broken: %w", NotifyKey, err)
	}
	return on, nil
}

func (r *repository) SaveNotify(on bool) error {
	return r.set(NotifyKey, strconv.FormatBool(on))
}

func (r *repository) get(key string) (string, error) {
	var v string
	err := r.db.View(func(tx *buntdb.Tx) error {
		var err error
		v, err = tx.Get(key)
		return err
	})
	return v, err
}

func (r *repository) set(key, value string) error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
}
