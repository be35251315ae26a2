package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fraud-portal/internal/data/entity"
	"fraud-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateIdentity is returned by Create when national-id, email or phone
// collide with an existing record.
var ErrDuplicateIdentity = errors.New("identity attribute already registered")

type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	FindVerifiedByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	FindConflicting(ctx context.Context, nationalID, email, phone string) (*entity.Identity, error)
	SetCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error
	ClearCode(ctx context.Context, id uuid.UUID) error
	SetSecretAndVerify(ctx context.Context, id uuid.UUID, code, secretHash string) (bool, error)
	ConsumeCode(ctx context.Context, id uuid.UUID, code string) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, phone, email, address string) error
}

type identityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewIdentityRepository(db database.PgxIface, log *zap.Logger) IdentityRepository {
	return &identityRepository{
		db:  db,
		log: log.With(zap.String("repository", "identity")),
	}
}

const identityColumns = `id, full_name, national_id, phone, email, address, role,
	       secret_hash, verified, otp_code, otp_expires_at, created_at, updated_at`

func scanIdentity(row pgx.Row) (*entity.Identity, error) {
	var ident entity.Identity
	err := row.Scan(
		&ident.ID,
		&ident.FullName,
		&ident.NationalID,
		&ident.Phone,
		&ident.Email,
		&ident.Address,
		&ident.Role,
		&ident.SecretHash,
		&ident.Verified,
		&ident.OTPCode,
		&ident.OTPExpiresAt,
		&ident.CreatedAt,
		&ident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	query := `
		INSERT INTO identities (id, full_name, national_id, phone, email, address,
		                        role, secret_hash, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.FullName,
		identity.NationalID,
		identity.Phone,
		identity.Email,
		identity.Address,
		identity.Role,
		identity.SecretHash,
		identity.Verified,
		identity.CreatedAt,
		identity.UpdatedAt,
	)

	if err != nil {
		// 23505 = unique_violation: two registrations raced the pre-checks
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateIdentity
		}
		r.log.Error("Failed to create identity",
			zap.Error(err),
			zap.String("email", identity.Email),
		)
		return fmt.Errorf("create identity %s: %w", identity.Email, err)
	}

	return nil
}

func (r *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`

	ident, err := scanIdentity(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find identity by ID",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return nil, fmt.Errorf("find identity by ID %s: %w", id.String(), err)
	}

	return ident, nil
}

func (r *identityRepository) FindVerifiedByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1 AND verified = true`

	ident, err := scanIdentity(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verified identity",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return nil, fmt.Errorf("find verified identity %s: %w", id.String(), err)
	}

	return ident, nil
}

// FindConflicting returns any identity matching national-id, email or phone.
// Used by registration to report duplicates before attempting the insert; the
// 23505 mapping in Create still covers the racing case.
func (r *identityRepository) FindConflicting(ctx context.Context, nationalID, email, phone string) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + `
		FROM identities
		WHERE national_id = $1 OR email = $2 OR phone = $3
		LIMIT 1`

	ident, err := scanIdentity(r.db.QueryRow(ctx, query, nationalID, email, phone))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find identity by unique attrs: %w", err)
	}
	return ident, nil
}

// SetCode overwrites any prior code, so at most one active code exists per
// identity.
func (r *identityRepository) SetCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	query := `
		UPDATE identities
		SET otp_code = $2, otp_expires_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, code, expiresAt)
	if err != nil {
		r.log.Error("Failed to set OTP code",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return fmt.Errorf("set code for identity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("identity %s not found", id.String())
	}

	return nil
}

func (r *identityRepository) ClearCode(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE identities
		SET otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to clear OTP code",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return fmt.Errorf("clear code for identity %s: %w", id.String(), err)
	}

	return nil
}

// SetSecretAndVerify is the registration-verify compare-and-set. The WHERE
// clause carries the whole validity predicate, so a wrong id, wrong code and
// expired code are indistinguishable: all report false with no row touched.
// Of two racing verify attempts exactly one sees the code still present.
func (r *identityRepository) SetSecretAndVerify(ctx context.Context, id uuid.UUID, code, secretHash string) (bool, error) {
	query := `
		UPDATE identities
		SET secret_hash = $3, verified = true,
		    otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1 AND otp_code = $2 AND otp_expires_at > NOW()
	`

	result, err := r.db.Exec(ctx, query, id, code, secretHash)
	if err != nil {
		r.log.Error("Failed to set secret and verify",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return false, fmt.Errorf("set secret for identity %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// ConsumeCode is the login-verify compare-and-set: it clears the code under
// the same combined predicate and returns the identity row, or nil when the
// id/code/expiry do not line up. The RETURNING clause makes the clear and the
// profile read one atomic statement.
func (r *identityRepository) ConsumeCode(ctx context.Context, id uuid.UUID, code string) (*entity.Identity, error) {
	query := `
		UPDATE identities
		SET otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1 AND otp_code = $2 AND otp_expires_at > NOW() AND verified = true
		RETURNING ` + identityColumns

	ident, err := scanIdentity(r.db.QueryRow(ctx, query, id, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to consume OTP code",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return nil, fmt.Errorf("consume code for identity %s: %w", id.String(), err)
	}

	return ident, nil
}

// UpdateProfile mutates contact attributes only; the verification and secret
// fields belong to the verification flow.
func (r *identityRepository) UpdateProfile(ctx context.Context, id uuid.UUID, phone, email, address string) error {
	query := `
		UPDATE identities
		SET phone = $2, email = $3, address = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, phone, email, address)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateIdentity
		}
		r.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return fmt.Errorf("update profile %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("identity %s not found", id.String())
	}

	return nil
}
