package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/RxV00/Forgptabinote/domain"
)

// ResetTokenRepositoryImpl implements domain.ResetTokenRepository using GORM
type ResetTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBPasswordReset represents the database model for PasswordResetToken
type DBPasswordReset struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;size:64"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBPasswordReset) TableName() string {
	return "password_resets"
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(db *gorm.DB) domain.ResetTokenRepository {
	return &ResetTokenRepositoryImpl{db: db}
}

// Create implements domain.ResetTokenRepository. Outstanding tokens for the
// same user are left untouched.
func (r *ResetTokenRepositoryImpl) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	dbToken := &DBPasswordReset{
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	token.CreatedAt = dbToken.CreatedAt
	return nil
}

// FindByToken implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) FindByToken(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
	var dbToken DBPasswordReset
	err := r.db.WithContext(ctx).Where("token = ?", tokenValue).First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return dbToDomainToken(&dbToken), nil
}

// Delete implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Delete(ctx context.Context, tokenValue string) error {
	res := r.db.WithContext(ctx).Where("token = ?", tokenValue).Delete(&DBPasswordReset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// Consume implements domain.ResetTokenRepository. The token row delete and
// the password update run in one transaction; the RowsAffected guard on the
// delete means only one of two racing consumers can win. A token found
// expired here is still removed, but the commit carries no password change.
func (r *ResetTokenRepositoryImpl) Consume(ctx context.Context, tokenValue, newPasswordHash string) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	var dbToken DBPasswordReset
	if err := tx.Where("token = ?", tokenValue).First(&dbToken).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTokenNotFound
		}
		return err
	}

	res := tx.Where("token = ?", tokenValue).Delete(&DBPasswordReset{})
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return domain.ErrTokenNotFound
	}

	if time.Now().After(dbToken.ExpiresAt) {
		if err := tx.Commit().Error; err != nil {
			return err
		}
		return domain.ErrTokenExpired
	}

	if err := tx.Model(&DBUser{}).Where("id = ?", dbToken.UserID).
		Update("password", newPasswordHash).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// DeleteExpired implements domain.ResetTokenRepository. Storage hygiene
// only; correctness never depends on this running.
func (r *ResetTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&DBPasswordReset{})
	return res.RowsAffected, res.Error
}

func dbToDomainToken(dbToken *DBPasswordReset) *domain.PasswordResetToken {
	return &domain.PasswordResetToken{
		ID:        dbToken.ID,
		Token:     dbToken.Token,
		UserID:    dbToken.UserID,
		ExpiresAt: dbToken.ExpiresAt,
		CreatedAt: dbToken.CreatedAt,
	}
}
