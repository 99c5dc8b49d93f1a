package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"lumera/config"
	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/internal/domain/service"
	"lumera/internal/usecase"
)

// In-memory fakes backing the service tests. Failure fields let individual
// tests script specific store errors.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAdminService(
	productRepo *fakeProductRepo,
	categoryRepo *fakeCategoryRepo,
	contentRepo *fakeContentRepo,
	userRepo *fakeUserRepo,
	uploader *fakeUploader,
	publisher *fakePublisher,
) usecase.AdminUsecase {
	cfg := &config.Config{}
	cfg.Catalog.ImportRating = 4.5

	return NewAdminService(productRepo, categoryRepo, contentRepo, userRepo, uploader, publisher, cfg, testLogger())
}

type fakeProductRepo struct {
	products  []*entity.Product
	listErr   error
	createErr error
	nextID    int
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	created := *product
	created.ID = fmt.Sprintf("p%d", f.nextID)
	f.products = append(f.products, &created)

	return created.ID, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product

			return nil
		}
	}

	return repository.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)

			return nil
		}
	}

	return repository.ErrProductNotFound
}

type fakeCategoryRepo struct {
	categories []*entity.Category
	createErr  error
	nextID     int
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	created := *category
	created.ID = fmt.Sprintf("c%d", f.nextID)
	f.categories = append(f.categories, &created)

	return created.ID, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)

			return nil
		}
	}

	return nil
}

type fakeContentRepo struct {
	content *entity.HomeContent
	saveErr error
}

func (f *fakeContentRepo) GetHome(_ context.Context) (*entity.HomeContent, error) {
	if f.content == nil {
		return nil, repository.ErrContentNotFound
	}

	return f.content, nil
}

func (f *fakeContentRepo) SaveHome(_ context.Context, content *entity.HomeContent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.content = content

	return nil
}

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, uid string) (*entity.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user

	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}

	return users, nil
}

type fakeCartRepo struct {
	items   map[string]map[string]*entity.CartItem
	listErr error
	putErr  error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]map[string]*entity.CartItem)}
}

func (f *fakeCartRepo) ListItems(_ context.Context, uid string) ([]*entity.CartItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := make([]*entity.CartItem, 0, len(f.items[uid]))
	for _, item := range f.items[uid] {
		items = append(items, item)
	}

	return items, nil
}

func (f *fakeCartRepo) PutItem(_ context.Context, uid string, item *entity.CartItem) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.items[uid] == nil {
		f.items[uid] = make(map[string]*entity.CartItem)
	}
	f.items[uid][item.ProductID] = item

	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, uid, productID string) error {
	delete(f.items[uid], productID)

	return nil
}

type fakeWishlistRepo struct {
	items map[string]map[string]*entity.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]map[string]*entity.WishlistItem)}
}

func (f *fakeWishlistRepo) ListItems(_ context.Context, uid string) ([]*entity.WishlistItem, error) {
	items := make([]*entity.WishlistItem, 0, len(f.items[uid]))
	for _, item := range f.items[uid] {
		items = append(items, item)
	}

	return items, nil
}

func (f *fakeWishlistRepo) PutItem(_ context.Context, uid string, item *entity.WishlistItem) error {
	if f.items[uid] == nil {
		f.items[uid] = make(map[string]*entity.WishlistItem)
	}
	f.items[uid][item.ProductID] = item

	return nil
}

func (f *fakeWishlistRepo) RemoveItem(_ context.Context, uid, productID string) error {
	delete(f.items[uid], productID)

	return nil
}

type fakeOrderRepo struct {
	orders map[string][]*entity.Order
}

func (f *fakeOrderRepo) ListRecent(_ context.Context, uid string, limit int) ([]*entity.Order, error) {
	orders := f.orders[uid]
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

type fakePublisher struct {
	events     []*service.CatalogEvent
	publishErr error
}

func (f *fakePublisher) PublishCatalogEvent(_ context.Context, event *service.CatalogEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, event)

	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}

type fakeUploader struct {
	url       string
	uploadErr error
}

func (f *fakeUploader) Upload(_ context.Context, _ service.UploadFile) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}

	return f.url, nil
}

type fakeQRCode struct {
	png []byte
}

func (f *fakeQRCode) ProductShareQR(_ string) ([]byte, error) {
	return f.png, nil
}

type fakeIdentity struct {
	session    *service.AuthSession
	signUpErr  error
	signInErr  error
	signOutErr error
	identity   *entity.Identity
	verifyErr  error
}

func (f *fakeIdentity) SignUp(_ context.Context, _, _ string) (*service.AuthSession, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}

	return f.session, nil
}

func (f *fakeIdentity) SignIn(_ context.Context, _, _ string) (*service.AuthSession, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}

	return f.session, nil
}

func (f *fakeIdentity) SignOut(_ context.Context, _ string) error {
	return f.signOutErr
}

func (f *fakeIdentity) VerifyToken(_ context.Context, _ string) (*entity.Identity, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}

	return f.identity, nil
}
