package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	domain "github.com/example/room-directory/domain/room"
	"github.com/example/room-directory/modules/session"
)

// Placeholder fragments returned instead of an empty list.
const (
	placeholderNoRooms      = `<div class="p-6 text-center text-gray-500">No chat rooms available</div>`
	placeholderNoMatches    = `<div class="p-6 text-center text-gray-500">No matching rooms found</div>`
	placeholderNoInCategory = `<div class="p-6 text-center text-gray-500">No rooms in this category</div>`
)

// categoryClasses maps a room category to its badge styling. Unknown
// categories fall back to the general style.
var categoryClasses = map[string]string{
	domain.CategoryGeneral: "bg-gray-100 text-gray-800",
	domain.CategoryGaming:  "bg-green-100 text-green-800",
	domain.CategoryTech:    "bg-blue-100 text-blue-800",
	domain.CategorySocial:  "bg-purple-100 text-purple-800",
}

func categoryClass(category string) string {
	if class, ok := categoryClasses[category]; ok {
		return class
	}
	return categoryClasses[domain.CategoryGeneral]
}

// roomView is the template model for a single room fragment. Ownership
// only gates visibility of the edit/delete controls; the mutating
// handlers re-check ownership server-side.
type roomView struct {
	domain.Room
	CategoryClass string
	CapacityText  string
	CapacityValue string
	IsOwner       bool
}

func newRoomView(r *domain.Room, viewer string) roomView {
	view := roomView{
		Room:          *r,
		CategoryClass: categoryClass(r.Category),
		CapacityText:  "Unlimited participants",
		IsOwner:       r.OwnedBy(viewer),
	}
	if r.Capacity != nil {
		view.CapacityText = fmt.Sprintf("Max %d participants", *r.Capacity)
		view.CapacityValue = strconv.Itoa(*r.Capacity)
	}
	return view
}

// loginView is the template model for the logged-in fragment.
type loginView struct {
	Username string
	Token    string
	UserJSON string
}

const fragmentTemplates = `
{{define "roomItem"}}<div class="room-item p-6 hover:bg-gray-50 transition duration-200 ease-in-out" data-room-id="{{.ID}}" data-room-creator="{{.Creator}}">
  <div class="flex items-center justify-between">
    <div class="space-y-2">
      <div class="flex items-center space-x-3">
        <h3 class="text-lg font-medium room-name">{{.Name}}</h3>
        <span class="room-category px-2 py-1 text-xs rounded-full {{.CategoryClass}}">{{.Category}}</span>
        <span class="room-status px-2 py-1 text-xs rounded-full bg-green-100 text-green-800">{{.Status}}</span>
      </div>
      <div class="text-sm text-gray-500">
        <span>Created by <span class="room-creator font-medium">{{.Creator}}</span></span>
        <span class="mx-2">&bull;</span>
        <span class="room-capacity">{{.CapacityText}}</span>
      </div>
    </div>
    <div class="room-actions{{if not .IsOwner}} hidden{{end}} space-x-2">
      <button
        class="edit-btn px-3 py-1 bg-emerald-100 text-emerald-700 rounded-md hover:bg-emerald-200 transition duration-200 ease-in-out"
        hx-get="/rooms/{{.ID}}/edit"
        hx-target="closest .room-item"
        hx-swap="outerHTML">
        Edit
      </button>
      <button
        class="delete-btn px-3 py-1 bg-red-100 text-red-700 rounded-md hover:bg-red-200 transition duration-200 ease-in-out"
        hx-delete="/rooms/{{.ID}}"
        hx-confirm="Are you sure you want to delete this room?"
        hx-target="closest .room-item"
        hx-swap="outerHTML">
        Delete
      </button>
    </div>
  </div>
</div>
{{end}}

{{define "editForm"}}<div class="room-item p-6 bg-indigo-50" data-room-id="{{.ID}}" data-room-creator="{{.Creator}}">
  <div class="space-y-4">
    <div>
      <label for="edit-room-name" class="block text-sm font-medium text-gray-700 mb-1">Room Name</label>
      <input
        type="text"
        id="edit-room-name"
        name="roomName"
        value="{{.Name}}"
        class="w-full px-4 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-indigo-500">
    </div>
    <div>
      <label for="edit-room-category" class="block text-sm font-medium text-gray-700 mb-1">Category</label>
      <select
        id="edit-room-category"
        name="category"
        class="w-full px-4 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-indigo-500">
        <option value="general"{{if eq .Category "general"}} selected{{end}}>General</option>
        <option value="gaming"{{if eq .Category "gaming"}} selected{{end}}>Gaming</option>
        <option value="tech"{{if eq .Category "tech"}} selected{{end}}>Technology</option>
        <option value="social"{{if eq .Category "social"}} selected{{end}}>Social</option>
      </select>
    </div>
    <div>
      <label for="edit-room-capacity" class="block text-sm font-medium text-gray-700 mb-1">Max Participants</label>
      <input
        type="number"
        id="edit-room-capacity"
        name="capacity"
        value="{{.CapacityValue}}"
        min="2"
        class="w-full px-4 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-indigo-500">
    </div>
    <div class="flex space-x-2">
      <button
        hx-put="/rooms/{{.ID}}"
        hx-include="#edit-room-name, #edit-room-category, #edit-room-capacity"
        hx-target="closest .room-item"
        hx-swap="outerHTML"
        class="px-4 py-2 bg-emerald-600 text-white rounded-md hover:bg-emerald-700 transition duration-200 ease-in-out">
        Save
      </button>
      <button
        hx-get="/rooms/{{.ID}}"
        hx-target="closest .room-item"
        hx-swap="outerHTML"
        class="px-4 py-2 bg-gray-200 text-gray-700 rounded-md hover:bg-gray-300 transition duration-200 ease-in-out">
        Cancel
      </button>
    </div>
  </div>
</div>
{{end}}

{{define "loginSuccess"}}<div class="flex items-center justify-between">
  <div>
    <span class="font-medium">Logged in as: </span>
    <span class="text-indigo-600 font-semibold" id="current-username">{{.Username}}</span>
  </div>
  <button
    hx-post="/logout"
    hx-trigger="click"
    hx-target="#user-section"
    class="px-3 py-1 bg-gray-200 text-gray-700 text-sm rounded-md hover:bg-gray-300 transition duration-200 ease-in-out">
    Logout
  </button>
</div>
<script>
  document.getElementById('search-section').classList.remove('hidden');
  document.getElementById('create-room-section').classList.remove('hidden');

  localStorage.setItem('currentUser', {{.UserJSON}});

  htmx.config.headers = htmx.config.headers || {};
  htmx.config.headers['Authorization'] = 'Bearer ' + {{.Token}};

  fetch('/rooms', {headers: {'Authorization': 'Bearer ' + {{.Token}}}})
    .then(function (response) { return response.text(); })
    .then(function (html) {
      document.getElementById('rooms-list').innerHTML = html;
    })
    .catch(function (error) {
      console.error('Error loading rooms:', error);
    });
</script>
{{end}}

{{define "loginForm"}}<div id="login-form">
  <h2 class="text-xl font-semibold mb-4">Enter Your Username</h2>
  <div class="flex space-x-2">
    <input
      type="text"
      id="username-input"
      name="username"
      placeholder="Username"
      class="flex-1 px-4 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-indigo-500">
    <button
      hx-post="/login"
      hx-trigger="click"
      hx-include="#username-input"
      hx-target="#user-section"
      class="px-4 py-2 bg-indigo-600 text-white rounded-md hover:bg-indigo-700 transition duration-200 ease-in-out">
      Login
    </button>
  </div>
</div>
<script>
  document.getElementById('search-section').classList.add('hidden');
  document.getElementById('create-room-section').classList.add('hidden');

  localStorage.removeItem('currentUser');
</script>
{{end}}
`

// Views renders every HTML fragment the API serves. All category and
// ownership presentation logic lives here, in one place.
type Views struct {
	tmpl *template.Template
}

// NewViews parses the fragment templates.
func NewViews() *Views {
	return &Views{
		tmpl: template.Must(template.New("fragments").Parse(fragmentTemplates)),
	}
}

func (v *Views) render(name string, data any) (string, error) {
	var buf strings.Builder
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// RoomItem renders one room fragment for the given viewer.
func (v *Views) RoomItem(r *domain.Room, viewer string) (string, error) {
	return v.render("roomItem", newRoomView(r, viewer))
}

// RoomList renders a set of rooms as concatenated fragments, or the
// given placeholder when the set is empty.
func (v *Views) RoomList(rooms []domain.Room, viewer, placeholder string) (string, error) {
	if len(rooms) == 0 {
		return placeholder, nil
	}

	var buf strings.Builder
	for i := range rooms {
		fragment, err := v.RoomItem(&rooms[i], viewer)
		if err != nil {
			return "", err
		}
		buf.WriteString(fragment)
	}
	return buf.String(), nil
}

// EditForm renders the pre-filled edit form for a room.
func (v *Views) EditForm(r *domain.Room) (string, error) {
	return v.render("editForm", newRoomView(r, ""))
}

// LoginSuccess renders the logged-in fragment, including the script
// that persists the user client-side and installs the bearer token.
func (v *Views) LoginSuccess(sess *session.LoginResponse) (string, error) {
	user := map[string]any{
		"username":   sess.Username,
		"id":         sess.UserID,
		"loggedInAt": sess.LoggedInAt,
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}

	return v.render("loginSuccess", loginView{
		Username: sess.Username,
		Token:    sess.Token,
		UserJSON: string(userJSON),
	})
}

// LoginForm renders the login form fragment shown after logout,
// including the script that clears client-side state.
func (v *Views) LoginForm() (string, error) {
	return v.render("loginForm", nil)
}
