package service

import (
	"context"
	"sort"
	"strings"

	"userhub/api/internal/models"
	"userhub/api/internal/repository"
	"userhub/api/internal/schemas"
)

// fakeUserStore is an in-memory UserStore mirroring the repository contract:
// ErrNotFound sentinels, partial updates, created-descending filtered reads.
type fakeUserStore struct {
	users  map[int64]models.User
	nextID int64
	err    error

	// updateErr and deleteErr fail only the mutation, leaving lookups
	// working, so the window between an existence check and the write can
	// be exercised.
	updateErr error
	deleteErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]models.User)}
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUserStore) GetByPhone(_ context.Context, phone string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	for _, user := range f.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUserStore) GetFiltered(_ context.Context, params schemas.UserFilterParams) ([]models.User, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}

	var matched []models.User
	for _, user := range f.users {
		if params.Username != "" && user.Username != params.Username {
			continue
		}
		if params.Phone != "" && user.Phone != params.Phone {
			continue
		}
		if params.CreatedFrom != "" && user.Created < params.CreatedFrom+" 00:00:00" {
			continue
		}
		if params.CreatedTo != "" && user.Created > params.CreatedTo+" 23:59:59" {
			continue
		}
		matched = append(matched, user)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Created != matched[j].Created {
			return matched[i].Created > matched[j].Created
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if params.Offset >= len(matched) {
		return nil, total, nil
	}
	end := params.Offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[params.Offset:end], total, nil
}

func (f *fakeUserStore) Create(_ context.Context, attrs map[string]any) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}

	f.nextID++
	user := models.User{Record: models.Record{ID: f.nextID}}
	applyUserAttrs(&user, attrs)
	if user.Created == "" {
		user.Created = "1404-01-01 00:00:00"
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) Update(_ context.Context, id int64, attrs map[string]any) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	if f.updateErr != nil {
		return models.User{}, f.updateErr
	}
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	applyUserAttrs(&user, attrs)
	f.users[id] = user
	return user, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func applyUserAttrs(user *models.User, attrs map[string]any) {
	for key, value := range attrs {
		s, _ := value.(string)
		switch strings.ToLower(key) {
		case "username":
			user.Username = s
		case "phone":
			user.Phone = s
		case "password":
			user.Password = s
		case "created":
			user.Created = s
		}
	}
}

type fakeLogStore struct {
	entries []models.LogEntry
	nextID  int64
	err     error
}

func (f *fakeLogStore) Create(_ context.Context, attrs map[string]any) (models.LogEntry, error) {
	if f.err != nil {
		return models.LogEntry{}, f.err
	}

	f.nextID++
	entry := models.LogEntry{Record: models.Record{ID: f.nextID, Created: "1404-01-01 00:00:00"}}
	if v, ok := attrs["method"].(string); ok {
		entry.Method = &v
	}
	if v, ok := attrs["endpoint"].(string); ok {
		entry.Endpoint = &v
	}
	if v, ok := attrs["status"].(string); ok {
		entry.Status = &v
	}
	if v, ok := attrs["user_id"].(int64); ok {
		entry.UserID = &v
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

type fakeSlot struct {
	userID int64
	clears int
	setErr error
}

func (f *fakeSlot) Set(userID int64) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.userID = userID
	return nil
}

func (f *fakeSlot) Clear() {
	f.userID = 0
	f.clears++
}
