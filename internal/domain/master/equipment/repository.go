package equipment

import "context"

// EquipmentRepository manages the reference list of equipment tags. Tags
// are stored uppercased and trimmed.
type EquipmentRepository interface {
	List(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, tag string) error

	// Delete removes the tag. Deleting a missing tag is a no-op success.
	Delete(ctx context.Context, tag string) error
}
