package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookcourier/contexts/identity-access/identity-service/domain/entities"
	domainerrors "bookcourier/contexts/identity-access/identity-service/domain/errors"
	"bookcourier/contexts/identity-access/identity-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type identityModel struct {
	IdentityID  string    `gorm:"column:identity_id;primaryKey"`
	Email       string    `gorm:"column:email;uniqueIndex"`
	DisplayName string    `gorm:"column:display_name"`
	PhotoURL    string    `gorm:"column:photo_url"`
	Role        string    `gorm:"column:role"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (identityModel) TableName() string {
	return "identities"
}

func (m identityModel) toEntity() entities.Identity {
	return entities.Identity{
		IdentityID:  m.IdentityID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		PhotoURL:    m.PhotoURL,
		Role:        entities.Role(m.Role),
		CreatedAt:   m.CreatedAt,
	}
}

type applicationModel struct {
	ApplicationID string    `gorm:"column:application_id;primaryKey"`
	Email         string    `gorm:"column:email;uniqueIndex"`
	Name          string    `gorm:"column:name"`
	Experience    string    `gorm:"column:experience"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (applicationModel) TableName() string {
	return "librarian_applications"
}

func (m applicationModel) toEntity() entities.LibrarianApplication {
	return entities.LibrarianApplication{
		ApplicationID: m.ApplicationID,
		Email:         m.Email,
		Name:          m.Name,
		Experience:    m.Experience,
		Status:        entities.ApplicationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *Repository) GetIdentityByEmail(ctx context.Context, email string) (entities.Identity, bool, error) {
	var row identityModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Identity{}, false, nil
		}
		return entities.Identity{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetIdentityByID(ctx context.Context, identityID string) (entities.Identity, bool, error) {
	var row identityModel
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Identity{}, false, nil
		}
		return entities.Identity{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) InsertIdentityIfAbsent(ctx context.Context, identity entities.Identity) (bool, entities.Identity, error) {
	row := identityModel{
		IdentityID:  identity.IdentityID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		Role:        string(identity.Role),
		CreatedAt:   identity.CreatedAt,
	}

	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil && !isUniqueViolation(create.Error) {
		return false, entities.Identity{}, create.Error
	}
	if create.Error == nil && create.RowsAffected > 0 {
		return true, identity, nil
	}

	existing, found, err := r.GetIdentityByEmail(ctx, identity.Email)
	if err != nil {
		return false, entities.Identity{}, err
	}
	if !found {
		return false, entities.Identity{}, gorm.ErrRecordNotFound
	}
	return false, existing, nil
}

func (r *Repository) UpdateIdentityRole(ctx context.Context, identityID string, role entities.Role) (entities.Identity, error) {
	update := r.db.WithContext(ctx).
		Model(&identityModel{}).
		Where("identity_id = ?", identityID).
		Update("role", string(role))
	if update.Error != nil {
		return entities.Identity{}, update.Error
	}
	if update.RowsAffected == 0 {
		return entities.Identity{}, domainerrors.ErrIdentityNotFound
	}

	updated, found, err := r.GetIdentityByID(ctx, identityID)
	if err != nil {
		return entities.Identity{}, err
	}
	if !found {
		return entities.Identity{}, domainerrors.ErrIdentityNotFound
	}
	return updated, nil
}

func (r *Repository) UpdateIdentityRoleByEmail(ctx context.Context, email string, role entities.Role) (int64, error) {
	update := r.db.WithContext(ctx).
		Model(&identityModel{}).
		Where("email = ?", email).
		Update("role", string(role))
	if update.Error != nil {
		return 0, update.Error
	}
	return update.RowsAffected, nil
}

func (r *Repository) DeleteIdentity(ctx context.Context, identityID string) error {
	del := r.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Delete(&identityModel{})
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return domainerrors.ErrIdentityNotFound
	}
	return nil
}

func (r *Repository) ListIdentities(ctx context.Context) ([]entities.Identity, error) {
	var rows []identityModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Identity, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetApplicationByEmail(ctx context.Context, email string) (entities.LibrarianApplication, bool, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.LibrarianApplication{}, false, nil
		}
		return entities.LibrarianApplication{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetApplicationByID(ctx context.Context, applicationID string) (entities.LibrarianApplication, bool, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.LibrarianApplication{}, false, nil
		}
		return entities.LibrarianApplication{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) InsertApplicationIfAbsent(ctx context.Context, application entities.LibrarianApplication) (bool, entities.LibrarianApplication, error) {
	row := applicationModel{
		ApplicationID: application.ApplicationID,
		Email:         application.Email,
		Name:          application.Name,
		Experience:    application.Experience,
		Status:        string(application.Status),
		CreatedAt:     application.CreatedAt,
	}

	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil && !isUniqueViolation(create.Error) {
		return false, entities.LibrarianApplication{}, create.Error
	}
	if create.Error == nil && create.RowsAffected > 0 {
		return true, application, nil
	}

	existing, found, err := r.GetApplicationByEmail(ctx, application.Email)
	if err != nil {
		return false, entities.LibrarianApplication{}, err
	}
	if !found {
		return false, entities.LibrarianApplication{}, gorm.ErrRecordNotFound
	}
	return false, existing, nil
}

func (r *Repository) UpdateApplicationStatus(ctx context.Context, applicationID string, status entities.ApplicationStatus) (entities.LibrarianApplication, error) {
	update := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", applicationID).
		Update("status", string(status))
	if update.Error != nil {
		return entities.LibrarianApplication{}, update.Error
	}
	if update.RowsAffected == 0 {
		return entities.LibrarianApplication{}, domainerrors.ErrApplicationNotFound
	}

	updated, found, err := r.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return entities.LibrarianApplication{}, err
	}
	if !found {
		return entities.LibrarianApplication{}, domainerrors.ErrApplicationNotFound
	}
	return updated, nil
}

func (r *Repository) DeleteApplication(ctx context.Context, applicationID string) error {
	del := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&applicationModel{})
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return domainerrors.ErrApplicationNotFound
	}
	return nil
}

func (r *Repository) ListApplications(ctx context.Context, filter ports.ApplicationFilter) ([]entities.LibrarianApplication, error) {
	tx := r.db.WithContext(ctx).Model(&applicationModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []applicationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.LibrarianApplication, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
