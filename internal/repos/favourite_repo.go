package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minishop/internal/domain"
)

// FavouriteRepo keys on the full (userId, productId, likeDate) tuple.
// The fixture store's pair-only lookup is a harness convenience; here a
// user liking the same product twice is two distinct rows and lookups
// need the complete key.
type FavouriteRepo struct{ DB *sqlx.DB }

func NewFavouriteRepo(db *sqlx.DB) *FavouriteRepo { return &FavouriteRepo{DB: db} }

func (r *FavouriteRepo) Create(f domain.Favourite) (domain.Favourite, error) {
	_, err := r.DB.Exec(`INSERT INTO favourites(user_id,product_id,like_date) VALUES(?,?,?)`,
		f.UserID, f.ProductID, f.LikeDate)
	if err != nil {
		return domain.Favourite{}, err
	}
	return f, nil
}

func (r *FavouriteRepo) ByKey(userID, productID int, likeDate string) (domain.Favourite, error) {
	var f domain.Favourite
	err := r.DB.Get(&f, `SELECT user_id,product_id,like_date FROM favourites WHERE user_id=? AND product_id=? AND like_date=?`,
		userID, productID, likeDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Favourite{}, fmt.Errorf("%w: (%d,%d,%s)", ErrFavouriteNotFound, userID, productID, likeDate)
	}
	return f, err
}

func (r *FavouriteRepo) All() ([]domain.Favourite, error) {
	var out []domain.Favourite
	err := r.DB.Select(&out, `SELECT user_id,product_id,like_date FROM favourites ORDER BY user_id,product_id,like_date`)
	return out, err
}

func (r *FavouriteRepo) Delete(userID, productID int, likeDate string) error {
	res, err := r.DB.Exec(`DELETE FROM favourites WHERE user_id=? AND product_id=? AND like_date=?`,
		userID, productID, likeDate)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: (%d,%d,%s)", ErrFavouriteNotFound, userID, productID, likeDate)
	}
	return nil
}
