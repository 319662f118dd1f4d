package domain

import "time"

// Post is a blog post owned by its author. The author identifier is set at
// creation and never changes; only the update and delete handlers may
// mutate or remove a post, and only on behalf of that author.
type Post struct {
	id        ID
	title     Title
	content   Content
	authorID  ID
	createdAt time.Time
	updatedAt time.Time
}

// NewPost creates a post with a fresh identifier and both timestamps set
// to the current UTC time.
func NewPost(title Title, content Content, authorID ID) *Post {
	now := time.Now().UTC()
	return &Post{
		id:        NewID(),
		title:     title,
		content:   content,
		authorID:  authorID,
		createdAt: now,
		updatedAt: now,
	}
}

// RestorePost reconstructs a post from storage without re-validating.
func RestorePost(id ID, title, content string, authorID ID, createdAt, updatedAt time.Time) *Post {
	return &Post{
		id:        id,
		title:     Title{value: title},
		content:   Content{value: content},
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the title and content in place and refreshes the update
// timestamp. The author identifier and creation time are untouched.
func (p *Post) Update(title Title, content Content) {
	p.title = title
	p.content = content
	p.updatedAt = time.Now().UTC()
}

func (p *Post) ID() ID               { return p.id }
func (p *Post) Title() Title         { return p.title }
func (p *Post) Content() Content     { return p.content }
func (p *Post) AuthorID() ID         { return p.authorID }
func (p *Post) CreatedAt() time.Time { return p.createdAt }
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }
