package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"milkbill/entities"
	"milkbill/pkg/bill/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BillRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(b *entities.Bill) error { return r.db.Create(b).Error }

func (r *sqliteRepo) List() ([]entities.Bill, error) {
	list := []entities.Bill{} // non-nil so an empty result encodes as [], not null
	return list, r.db.Order("date desc, id desc").Find(&list).Error
}

func (r *sqliteRepo) Search(q string) ([]entities.Bill, error) {
	list := []entities.Bill{}
	return list, filter(r.db.Model(&entities.Bill{}), q).
		Order("date desc, id desc").Find(&list).Error
}

func (r *sqliteRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Bill{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sqliteRepo) Totals(q string) (repository.Totals, error) {
	var t repository.Totals
	err := filter(r.db.Model(&entities.Bill{}), q).
		Select("COUNT(*) AS count, COALESCE(SUM(total_liters), 0) AS total_liters, COALESCE(SUM(total_amount), 0) AS total_amount").
		Scan(&t).Error
	return t, err
}

// filter narrows q to name (case-insensitive substring) or mobile (substring).
func filter(tx *gorm.DB, q string) *gorm.DB {
	if q == "" {
		return tx
	}
	return tx.Where("lower(name) LIKE ? OR mobile LIKE ?",
		"%"+strings.ToLower(q)+"%", "%"+q+"%")
}
