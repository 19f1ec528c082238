package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/VarunTejjj/theautomationaffli/objects"
)

// Repository is the persistent product store: a single JSON object mapping
// product ids to records, rewritten wholesale on every save. Reads after a
// successful save always observe the saved record.
type Repository struct {
	path     string
	mu       sync.Mutex
	products map[string]*objects.ProductRecord
}

// NewRepository loads the store file. A missing file is an empty store; a
// corrupt file is an error so a bad deploy never silently drops records.
func NewRepository(path string) (*Repository, error) {
	log.Printf("[REPOSITORY] Loading product store from %s", path)

	repo := &Repository{
		path:     path,
		products: make(map[string]*objects.ProductRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[REPOSITORY] Store file does not exist yet, starting empty")
			return repo, nil
		}
		return nil, fmt.Errorf("failed to read product store: %w", err)
	}

	if err := json.Unmarshal(data, &repo.products); err != nil {
		return nil, fmt.Errorf("failed to parse product store: %w", err)
	}

	log.Printf("[REPOSITORY] Loaded %d products", len(repo.products))
	return repo, nil
}

// FindProduct returns the record for the given id, or nil when absent.
func (repo *Repository) FindProduct(id string) *objects.ProductRecord {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	product, ok := repo.products[id]
	if !ok {
		log.Printf("[REPOSITORY] Product %s not found", id)
		return nil
	}
	return product
}

// NextProductID allocates the next product id: max existing integer id plus
// one, or 10001 for an empty store. Gaps in the sequence are tolerated.
func (repo *Repository) NextProductID() string {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	max := 0
	for id := range repo.products {
		n, err := strconv.Atoi(id)
		if err != nil {
			log.Printf("[REPOSITORY] Ignoring non-numeric product id %q", id)
			continue
		}
		if n > max {
			max = n
		}
	}

	if max == 0 {
		return "10001"
	}
	return strconv.Itoa(max + 1)
}

// SaveProduct stores the record and rewrites the whole store file. The
// in-memory map is only updated when the file write succeeds, so a failed
// save leaves the store unchanged.
func (repo *Repository) SaveProduct(product *objects.ProductRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.products[product.ProductID]; exists {
		return fmt.Errorf("product id %s already exists", product.ProductID)
	}

	repo.products[product.ProductID] = product

	data, err := json.MarshalIndent(repo.products, "", "  ")
	if err != nil {
		delete(repo.products, product.ProductID)
		return fmt.Errorf("failed to encode product store: %w", err)
	}

	if err := os.WriteFile(repo.path, data, 0644); err != nil {
		delete(repo.products, product.ProductID)
		log.Printf("[REPOSITORY] Error writing product store: %v", err)
		return fmt.Errorf("failed to write product store: %w", err)
	}

	log.Printf("[REPOSITORY] Saved product %s (%d total)", product.ProductID, len(repo.products))
	return nil
}

// Count returns the number of stored products.
func (repo *Repository) Count() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return len(repo.products)
}
