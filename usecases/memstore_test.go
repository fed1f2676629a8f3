package usecases

import (
	"sort"

	"carrot-server/entities"
	"carrot-server/repositories"
)

// memStore is an in-memory repositories.Store for use case tests. Reads
// hand out copies and Update writes copies back, so a mutation only lands
// when the use case explicitly persists it.
type memStore struct {
	users  map[uint]*entities.User
	todos  map[uint]*entities.Todo
	items  map[uint]*entities.Item
	invs   map[uint]*entities.Inventory
	nextID uint
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uint]*entities.User),
		todos: make(map[uint]*entities.Todo),
		items: make(map[uint]*entities.Item),
		invs:  make(map[uint]*entities.Inventory),
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) Users() repositories.UserRepository            { return &memUsers{m} }
func (m *memStore) Todos() repositories.TodoRepository            { return &memTodos{m} }
func (m *memStore) Items() repositories.ItemRepository            { return &memItems{m} }
func (m *memStore) Inventories() repositories.InventoryRepository { return &memInvs{m} }

// Tests run single-threaded, so no transaction isolation is simulated.
func (m *memStore) Atomically(fn func(repositories.Store) error) error {
	return fn(m)
}

// Seeding helpers.

func (m *memStore) addUser(email string, balance int) *entities.User {
	u := &entities.User{ID: m.id(), Email: email, CarrotBalance: balance}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addTodo(ownerID uint, title string, completed bool) *entities.Todo {
	t := &entities.Todo{ID: m.id(), Title: title, OwnerID: ownerID, Completed: completed}
	m.todos[t.ID] = t
	return t
}

func (m *memStore) addItem(name string, price int, itemType string) *entities.Item {
	i := &entities.Item{ID: m.id(), Name: name, Price: price, ItemType: itemType}
	m.items[i.ID] = i
	return i
}

func (m *memStore) addInventory(userID, itemID uint, equipped bool) *entities.Inventory {
	inv := &entities.Inventory{ID: m.id(), UserID: userID, ItemID: itemID, IsEquipped: equipped}
	m.invs[inv.ID] = inv
	return inv
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(user *entities.User) error {
	user.ID = r.s.id()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *memUsers) GetByID(id uint) (*entities.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Update(user *entities.User) error {
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

type memTodos struct{ s *memStore }

func (r *memTodos) Create(todo *entities.Todo) error {
	todo.ID = r.s.id()
	cp := *todo
	r.s.todos[todo.ID] = &cp
	return nil
}

func (r *memTodos) GetByID(id uint) (*entities.Todo, error) {
	t, ok := r.s.todos[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTodos) GetByOwnerID(ownerID uint, offset, limit int) ([]entities.Todo, error) {
	if limit <= 0 {
		limit = 100
	}
	var todos []entities.Todo
	for _, t := range r.s.todos {
		if t.OwnerID == ownerID {
			todos = append(todos, *t)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })
	if offset >= len(todos) {
		return nil, nil
	}
	todos = todos[offset:]
	if len(todos) > limit {
		todos = todos[:limit]
	}
	return todos, nil
}

func (r *memTodos) GetDueAlarms(hhmm string) ([]entities.Todo, error) {
	var todos []entities.Todo
	for _, t := range r.s.todos {
		if !t.Completed && t.AlarmTime != nil && *t.AlarmTime == hhmm {
			todos = append(todos, *t)
		}
	}
	return todos, nil
}

func (r *memTodos) Update(todo *entities.Todo) error {
	cp := *todo
	r.s.todos[todo.ID] = &cp
	return nil
}

func (r *memTodos) Delete(id uint) error {
	delete(r.s.todos, id)
	return nil
}

type memItems struct{ s *memStore }

func (r *memItems) GetByID(id uint) (*entities.Item, error) {
	i, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *memItems) GetAll() ([]entities.Item, error) {
	var items []entities.Item
	for _, i := range r.s.items {
		items = append(items, *i)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	return items, nil
}

type memInvs struct{ s *memStore }

func (r *memInvs) withItem(inv entities.Inventory) entities.Inventory {
	if item, ok := r.s.items[inv.ItemID]; ok {
		inv.Item = *item
	}
	return inv
}

func (r *memInvs) Create(inv *entities.Inventory) error {
	inv.ID = r.s.id()
	cp := *inv
	r.s.invs[inv.ID] = &cp
	return nil
}

func (r *memInvs) GetByID(id uint) (*entities.Inventory, error) {
	inv, ok := r.s.invs[id]
	if !ok {
		return nil, nil
	}
	cp := r.withItem(*inv)
	return &cp, nil
}

func (r *memInvs) GetByUserID(userID uint) ([]entities.Inventory, error) {
	var invs []entities.Inventory
	for _, inv := range r.s.invs {
		if inv.UserID == userID {
			invs = append(invs, r.withItem(*inv))
		}
	}
	sort.Slice(invs, func(i, j int) bool { return invs[i].ID < invs[j].ID })
	return invs, nil
}

func (r *memInvs) GetByUserAndItem(userID, itemID uint) (*entities.Inventory, error) {
	for _, inv := range r.s.invs {
		if inv.UserID == userID && inv.ItemID == itemID {
			cp := r.withItem(*inv)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInvs) GetEquippedByType(userID uint, itemType string) (*entities.Inventory, error) {
	for _, inv := range r.s.invs {
		if inv.UserID != userID || !inv.IsEquipped {
			continue
		}
		if item, ok := r.s.items[inv.ItemID]; ok && item.ItemType == itemType {
			cp := r.withItem(*inv)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInvs) Update(inv *entities.Inventory) error {
	cp := *inv
	cp.Item = entities.Item{}
	r.s.invs[inv.ID] = &cp
	return nil
}
