package mockapi

import (
	"context"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateMainCategory appends a top-level category.
func (s *Server) CreateMainCategory(_ context.Context, token string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	c := model.MainCategory{
		ID:          s.nextID(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	if image != nil {
		c.Image = s.fileURL("category", image.FileName)
	}
	s.mains = append(s.mains, c)
	return &c, nil
}

// ListMainCategories returns the category roots, optionally filtered by state.
func (s *Server) ListMainCategories(_ context.Context, token string, isActive *bool) ([]model.MainCategory, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.MainCategory, 0, len(s.mains))
	for _, c := range s.mains {
		if matchActive(isActive, c.IsActive) {
			out = append(out, c)
		}
	}
	return out, len(out), nil
}

// UpdateMainCategory patches a root category and its embedded references.
func (s *Server) UpdateMainCategory(_ context.Context, token, id string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.mains {
		if s.mains[i].ID != id {
			continue
		}
		c := &s.mains[i]
		if in.Name != "" {
			c.Name = in.Name
		}
		c.Description = in.Description
		if in.IsActive != nil {
			c.IsActive = *in.IsActive
		}
		if image != nil {
			c.Image = s.fileURL("category", image.FileName)
		}
		c.UpdatedAt = timePtr(s.now())

		ref := categoryRef(*c)
		for j := range s.subs {
			if s.subs[j].MainCategory.ID == id {
				s.subs[j].MainCategory = ref
			}
		}
		out := *c
		return &out, nil
	}
	return nil, errNotFound("main category")
}

// DeleteMainCategory removes a root category; children are orphaned, which
// mirrors the live API rather than cascading.
func (s *Server) DeleteMainCategory(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.mains {
		if s.mains[i].ID == id {
			s.mains = append(s.mains[:i], s.mains[i+1:]...)
			return nil
		}
	}
	return errNotFound("main category")
}

// CreateSubCategory appends a second-level category under a root.
func (s *Server) CreateSubCategory(_ context.Context, token string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	parent, ok := s.findMain(in.MainCategoryID)
	if !ok {
		return nil, errBadRequest("Select a valid main category.")
	}
	c := model.SubCategory{
		ID:           s.nextID(),
		Name:         in.Name,
		Description:  in.Description,
		MainCategory: categoryRef(parent),
		IsActive:     boolOrDefault(in.IsActive, true),
		CreatedAt:    s.now(),
	}
	if image != nil {
		c.Image = s.fileURL("category", image.FileName)
	}
	s.subs = append(s.subs, c)
	return &c, nil
}

// ListSubCategories filters sub categories by parent and state.
func (s *Server) ListSubCategories(_ context.Context, token string, opts model.CategoryListOptions) ([]model.SubCategory, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.SubCategory, 0, len(s.subs))
	for _, c := range s.subs {
		if opts.MainCategoryID != "" && c.MainCategory.ID != opts.MainCategoryID {
			continue
		}
		if !matchActive(opts.IsActive, c.IsActive) {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

// UpdateSubCategory patches a sub category, re-parenting it when asked.
func (s *Server) UpdateSubCategory(_ context.Context, token, id string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.subs {
		if s.subs[i].ID != id {
			continue
		}
		c := &s.subs[i]
		if in.Name != "" {
			c.Name = in.Name
		}
		c.Description = in.Description
		if in.MainCategoryID != "" && in.MainCategoryID != c.MainCategory.ID {
			parent, ok := s.findMain(in.MainCategoryID)
			if !ok {
				return nil, errBadRequest("Select a valid main category.")
			}
			c.MainCategory = categoryRef(parent)
		}
		if in.IsActive != nil {
			c.IsActive = *in.IsActive
		}
		if image != nil {
			c.Image = s.fileURL("category", image.FileName)
		}
		c.UpdatedAt = timePtr(s.now())
		out := *c
		return &out, nil
	}
	return nil, errNotFound("sub category")
}

// DeleteSubCategory removes a sub category.
func (s *Server) DeleteSubCategory(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.subs {
		if s.subs[i].ID == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return nil
		}
	}
	return errNotFound("sub category")
}

// CreateSubject appends a subject bound to its categories and board.
func (s *Server) CreateSubject(_ context.Context, token string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	main, ok := s.findMain(in.MainCategoryID)
	if !ok {
		return nil, errBadRequest("Select a valid main category.")
	}
	sub, ok := s.findSub(in.SubCategoryID)
	if !ok {
		return nil, errBadRequest("Select a valid sub category.")
	}
	subj := model.Subject{
		ID:           s.nextID(),
		Title:        in.Title,
		Description:  in.Description,
		MainCategory: categoryRef(main),
		SubCategory:  subCategoryRef(sub),
		IsActive:     boolOrDefault(in.IsActive, true),
		CreatedAt:    s.now(),
	}
	if in.BoardID != "" {
		board, ok := s.findBoard(in.BoardID)
		if !ok {
			return nil, errBadRequest("Select a valid board.")
		}
		subj.Board = boardRefPtr(board)
	}
	if thumbnail != nil {
		subj.Thumbnail = s.fileURL("subject", thumbnail.FileName)
	}
	s.subjects = append(s.subjects, subj)
	return &subj, nil
}

// ListSubjects filters subjects by category bindings and state.
func (s *Server) ListSubjects(_ context.Context, token string, opts model.SubjectListOptions) ([]model.Subject, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.Subject, 0, len(s.subjects))
	for _, subj := range s.subjects {
		if opts.MainCategoryID != "" && subj.MainCategory.ID != opts.MainCategoryID {
			continue
		}
		if opts.SubCategoryID != "" && subj.SubCategory.ID != opts.SubCategoryID {
			continue
		}
		if !matchActive(opts.IsActive, subj.IsActive) {
			continue
		}
		subj.Chapters = nil // list payloads omit chapters
		out = append(out, subj)
	}
	return out, len(out), nil
}

// GetSubject returns one subject with its chapters embedded, matching the
// live API's detail payload.
func (s *Server) GetSubject(_ context.Context, token, id string) (*model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for _, subj := range s.subjects {
		if subj.ID != id {
			continue
		}
		out := subj
		out.Chapters = nil
		for _, ch := range s.chapters {
			if ch.Subject != nil && ch.Subject.ID == id {
				out.Chapters = append(out.Chapters, ch)
			}
		}
		return &out, nil
	}
	return nil, errNotFound("subject")
}

// UpdateSubject patches a subject.
func (s *Server) UpdateSubject(_ context.Context, token, id string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.subjects {
		if s.subjects[i].ID != id {
			continue
		}
		subj := &s.subjects[i]
		if in.Title != "" {
			subj.Title = in.Title
		}
		subj.Description = in.Description
		if in.MainCategoryID != "" {
			main, ok := s.findMain(in.MainCategoryID)
			if !ok {
				return nil, errBadRequest("Select a valid main category.")
			}
			subj.MainCategory = categoryRef(main)
		}
		if in.SubCategoryID != "" {
			sub, ok := s.findSub(in.SubCategoryID)
			if !ok {
				return nil, errBadRequest("Select a valid sub category.")
			}
			subj.SubCategory = subCategoryRef(sub)
		}
		if in.BoardID != "" {
			board, ok := s.findBoard(in.BoardID)
			if !ok {
				return nil, errBadRequest("Select a valid board.")
			}
			subj.Board = boardRefPtr(board)
		}
		if in.IsActive != nil {
			subj.IsActive = *in.IsActive
		}
		if thumbnail != nil {
			subj.Thumbnail = s.fileURL("subject", thumbnail.FileName)
		}
		subj.UpdatedAt = timePtr(s.now())
		out := *subj
		return &out, nil
	}
	return nil, errNotFound("subject")
}

// DeleteSubject removes a subject and its chapters.
func (s *Server) DeleteSubject(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.subjects {
		if s.subjects[i].ID == id {
			s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)
			kept := s.chapters[:0]
			for _, ch := range s.chapters {
				if ch.Subject == nil || ch.Subject.ID != id {
					kept = append(kept, ch)
				}
			}
			s.chapters = kept
			return nil
		}
	}
	return errNotFound("subject")
}

// CreateChapter appends a chapter to a subject.
func (s *Server) CreateChapter(_ context.Context, token string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	subj, ok := s.findSubject(in.SubjectID)
	if !ok {
		return nil, errBadRequest("Select a valid subject.")
	}
	ch := model.Chapter{
		ID:          s.nextID(),
		Title:       in.Title,
		Description: in.Description,
		Subject:     subjectRefPtr(subj),
		Content:     model.ChapterContent{Text: in.TextContent},
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	if in.Order != nil {
		ch.Order = *in.Order
	}
	if pdf != nil {
		ch.Content.PDF = &model.ChapterFile{URL: s.fileURL("chapter-pdf", pdf.FileName), FileName: pdf.FileName}
	}
	if video != nil {
		ch.Content.Video = &model.ChapterFile{URL: s.fileURL("chapter-video", video.FileName), FileName: video.FileName}
	}
	s.chapters = append(s.chapters, ch)
	return &ch, nil
}

// ListChapters returns the chapters of one subject.
func (s *Server) ListChapters(_ context.Context, token, subjectID string, isActive *bool) ([]model.Chapter, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	if _, ok := s.findSubject(subjectID); !ok {
		return nil, 0, errNotFound("subject")
	}
	out := make([]model.Chapter, 0)
	for _, ch := range s.chapters {
		if ch.Subject != nil && ch.Subject.ID == subjectID && matchActive(isActive, ch.IsActive) {
			out = append(out, ch)
		}
	}
	return out, len(out), nil
}

// GetChapter returns one chapter by id.
func (s *Server) GetChapter(_ context.Context, token, id string) (*model.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for _, ch := range s.chapters {
		if ch.ID == id {
			out := ch
			return &out, nil
		}
	}
	return nil, errNotFound("chapter")
}

// UpdateChapter patches a chapter; files replace their predecessors.
func (s *Server) UpdateChapter(_ context.Context, token, id string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.chapters {
		if s.chapters[i].ID != id {
			continue
		}
		ch := &s.chapters[i]
		if in.Title != "" {
			ch.Title = in.Title
		}
		ch.Description = in.Description
		ch.Content.Text = in.TextContent
		if in.Order != nil {
			ch.Order = *in.Order
		}
		if in.IsActive != nil {
			ch.IsActive = *in.IsActive
		}
		if pdf != nil {
			ch.Content.PDF = &model.ChapterFile{URL: s.fileURL("chapter-pdf", pdf.FileName), FileName: pdf.FileName}
		}
		if video != nil {
			ch.Content.Video = &model.ChapterFile{URL: s.fileURL("chapter-video", video.FileName), FileName: video.FileName}
		}
		ch.UpdatedAt = timePtr(s.now())
		out := *ch
		return &out, nil
	}
	return nil, errNotFound("chapter")
}

// DeleteChapter removes a chapter.
func (s *Server) DeleteChapter(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.chapters {
		if s.chapters[i].ID == id {
			s.chapters = append(s.chapters[:i], s.chapters[i+1:]...)
			return nil
		}
	}
	return errNotFound("chapter")
}

// CreateBoard appends an examination board.
func (s *Server) CreateBoard(_ context.Context, token string, in model.BoardInput) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	b := model.Board{
		ID:          s.nextID(),
		Name:        in.Name,
		Description: in.Description,
		Code:        in.Code,
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	s.boards = append(s.boards, b)
	return &b, nil
}

// ListBoards returns boards, optionally filtered by state.
func (s *Server) ListBoards(_ context.Context, token string, isActive *bool) ([]model.Board, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.Board, 0, len(s.boards))
	for _, b := range s.boards {
		if matchActive(isActive, b.IsActive) {
			out = append(out, b)
		}
	}
	return out, len(out), nil
}

// GetBoard returns one board by id.
func (s *Server) GetBoard(_ context.Context, token, id string) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if b, ok := s.findBoard(id); ok {
		out := b
		return &out, nil
	}
	return nil, errNotFound("board")
}

// UpdateBoard patches a board.
func (s *Server) UpdateBoard(_ context.Context, token, id string, in model.BoardInput) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.boards {
		if s.boards[i].ID != id {
			continue
		}
		b := &s.boards[i]
		if in.Name != "" {
			b.Name = in.Name
		}
		b.Description = in.Description
		b.Code = in.Code
		if in.IsActive != nil {
			b.IsActive = *in.IsActive
		}
		b.UpdatedAt = timePtr(s.now())
		out := *b
		return &out, nil
	}
	return nil, errNotFound("board")
}

// DeleteBoard removes a board.
func (s *Server) DeleteBoard(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.boards {
		if s.boards[i].ID == id {
			s.boards = append(s.boards[:i], s.boards[i+1:]...)
			return nil
		}
	}
	return errNotFound("board")
}

// CreateCourse appends a standalone course.
func (s *Server) CreateCourse(_ context.Context, token string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	c := model.Course{
		ID:          s.nextID(),
		Title:       in.Title,
		Description: in.Description,
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	if in.Price != nil {
		c.Price = *in.Price
	}
	if thumbnail != nil {
		c.Thumbnail = s.fileURL("course", thumbnail.FileName)
	}
	s.courses = append(s.courses, c)
	return &c, nil
}

// ListCourses returns courses, optionally filtered by state.
func (s *Server) ListCourses(_ context.Context, token string, isActive *bool) ([]model.Course, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if matchActive(isActive, c.IsActive) {
			out = append(out, c)
		}
	}
	return out, len(out), nil
}

// GetCourse returns one course by id.
func (s *Server) GetCourse(_ context.Context, token, id string) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if c, ok := s.findCourse(id); ok {
		out := c
		return &out, nil
	}
	return nil, errNotFound("course")
}

// UpdateCourse patches a course.
func (s *Server) UpdateCourse(_ context.Context, token, id string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		c := &s.courses[i]
		if in.Title != "" {
			c.Title = in.Title
		}
		c.Description = in.Description
		if in.Price != nil {
			c.Price = *in.Price
		}
		if in.IsActive != nil {
			c.IsActive = *in.IsActive
		}
		if thumbnail != nil {
			c.Thumbnail = s.fileURL("course", thumbnail.FileName)
		}
		c.UpdatedAt = timePtr(s.now())

		ref := courseRef(*c)
		for j := range s.courseChapters {
			if s.courseChapters[j].Course != nil && s.courseChapters[j].Course.ID == id {
				s.courseChapters[j].Course = &ref
			}
		}
		out := *c
		return &out, nil
	}
	return nil, errNotFound("course")
}

// DeleteCourse removes a course and its chapters.
func (s *Server) DeleteCourse(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			kept := s.courseChapters[:0]
			for _, ch := range s.courseChapters {
				if ch.Course == nil || ch.Course.ID != id {
					kept = append(kept, ch)
				}
			}
			s.courseChapters = kept
			return nil
		}
	}
	return errNotFound("course")
}

// CreateCourseChapter appends a chapter to a course.
func (s *Server) CreateCourseChapter(_ context.Context, token string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	course, ok := s.findCourse(in.CourseID)
	if !ok {
		return nil, errBadRequest("Select a valid course.")
	}
	ref := courseRef(course)
	ch := model.CourseChapter{
		ID:          s.nextID(),
		Title:       in.Title,
		Description: in.Description,
		Course:      &ref,
		Content:     model.CourseChapterContent{Text: in.Text},
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	if in.Order != nil {
		ch.Order = *in.Order
	}
	if pdf != nil {
		ch.Content.PDF = s.fileURL("course-pdf", pdf.FileName)
	}
	if video != nil {
		ch.Content.Video = s.fileURL("course-video", video.FileName)
	}
	s.courseChapters = append(s.courseChapters, ch)
	return &ch, nil
}

// ListCourseChapters returns the chapters of one course.
func (s *Server) ListCourseChapters(_ context.Context, token, courseID string, isActive *bool) ([]model.CourseChapter, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	if _, ok := s.findCourse(courseID); !ok {
		return nil, 0, errNotFound("course")
	}
	out := make([]model.CourseChapter, 0)
	for _, ch := range s.courseChapters {
		if ch.Course != nil && ch.Course.ID == courseID && matchActive(isActive, ch.IsActive) {
			out = append(out, ch)
		}
	}
	return out, len(out), nil
}

// GetCourseChapter returns one course chapter by id.
func (s *Server) GetCourseChapter(_ context.Context, token, id string) (*model.CourseChapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for _, ch := range s.courseChapters {
		if ch.ID == id {
			out := ch
			return &out, nil
		}
	}
	return nil, errNotFound("course chapter")
}

// UpdateCourseChapter patches a course chapter.
func (s *Server) UpdateCourseChapter(_ context.Context, token, id string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.courseChapters {
		if s.courseChapters[i].ID != id {
			continue
		}
		ch := &s.courseChapters[i]
		if in.Title != "" {
			ch.Title = in.Title
		}
		ch.Description = in.Description
		ch.Content.Text = in.Text
		if in.Order != nil {
			ch.Order = *in.Order
		}
		if in.IsActive != nil {
			ch.IsActive = *in.IsActive
		}
		if pdf != nil {
			ch.Content.PDF = s.fileURL("course-pdf", pdf.FileName)
		}
		if video != nil {
			ch.Content.Video = s.fileURL("course-video", video.FileName)
		}
		ch.UpdatedAt = timePtr(s.now())
		out := *ch
		return &out, nil
	}
	return nil, errNotFound("course chapter")
}

// DeleteCourseChapter removes a course chapter.
func (s *Server) DeleteCourseChapter(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.courseChapters {
		if s.courseChapters[i].ID == id {
			s.courseChapters = append(s.courseChapters[:i], s.courseChapters[i+1:]...)
			return nil
		}
	}
	return errNotFound("course chapter")
}

// CreatePlan appends one subscription plan.
func (s *Server) CreatePlan(_ context.Context, token string, in model.PlanInput) (*model.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	sub, ok := s.findSub(in.SubCategoryID)
	if !ok {
		return nil, errBadRequest("Select a valid sub category.")
	}
	p := model.Plan{
		ID:          s.nextID(),
		SubCategory: planSubCategoryRef(sub),
		Duration:    in.Duration,
		Description: in.Description,
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	s.plans = append(s.plans, p)
	return &p, nil
}

// CreatePlans bulk-creates one plan per spec under a sub category.
func (s *Server) CreatePlans(_ context.Context, token, subCategoryID string, specs []model.PlanSpec) ([]model.Plan, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	sub, ok := s.findSub(subCategoryID)
	if !ok {
		return nil, 0, errBadRequest("Select a valid sub category.")
	}
	created := make([]model.Plan, 0, len(specs))
	for _, spec := range specs {
		p := model.Plan{
			ID:          s.nextID(),
			SubCategory: planSubCategoryRef(sub),
			Duration:    spec.Duration,
			Amount:      spec.Amount,
			Description: spec.Description,
			IsActive:    true,
			CreatedAt:   s.now(),
		}
		s.plans = append(s.plans, p)
		created = append(created, p)
	}
	return created, len(created), nil
}

// ListPlans filters plans by sub category, duration and state.
func (s *Server) ListPlans(_ context.Context, token string, opts model.PlanListOptions) ([]model.Plan, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.Plan, 0, len(s.plans))
	for _, p := range s.plans {
		if opts.SubCategoryID != "" && p.SubCategory.ID != opts.SubCategoryID {
			continue
		}
		if opts.Duration != "" && p.Duration != opts.Duration {
			continue
		}
		if !matchActive(opts.IsActive, p.IsActive) {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

// ListPlansBySubCategory returns the plans scoped to one sub category.
func (s *Server) ListPlansBySubCategory(ctx context.Context, token, subCategoryID string, isActive *bool) ([]model.Plan, int, error) {
	if subCategoryID == "" {
		return nil, 0, errNotFound("sub category")
	}
	return s.ListPlans(ctx, token, model.PlanListOptions{SubCategoryID: subCategoryID, IsActive: isActive})
}

// GetPlan returns one plan by id.
func (s *Server) GetPlan(_ context.Context, token, id string) (*model.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for _, p := range s.plans {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, errNotFound("plan")
}

// UpdatePlan patches a plan.
func (s *Server) UpdatePlan(_ context.Context, token, id string, in model.PlanInput) (*model.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.plans {
		if s.plans[i].ID != id {
			continue
		}
		p := &s.plans[i]
		if in.SubCategoryID != "" && in.SubCategoryID != p.SubCategory.ID {
			sub, ok := s.findSub(in.SubCategoryID)
			if !ok {
				return nil, errBadRequest("Select a valid sub category.")
			}
			p.SubCategory = planSubCategoryRef(sub)
		}
		if in.Duration != "" {
			p.Duration = in.Duration
		}
		if in.Amount != nil {
			p.Amount = *in.Amount
		}
		p.Description = in.Description
		if in.IsActive != nil {
			p.IsActive = *in.IsActive
		}
		p.UpdatedAt = timePtr(s.now())
		out := *p
		return &out, nil
	}
	return nil, errNotFound("plan")
}

// DeletePlan removes a plan.
func (s *Server) DeletePlan(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return nil
		}
	}
	return errNotFound("plan")
}

// GetCommissionSettings returns the single split record, 404 when unset.
func (s *Server) GetCommissionSettings(_ context.Context, token string) (*model.CommissionSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if s.commission == nil {
		return nil, errNotFound("commission settings")
	}
	out := *s.commission
	return &out, nil
}

// CreateCommissionSettings writes the first split record.
func (s *Server) CreateCommissionSettings(_ context.Context, token string, in model.CommissionSettingsInput) (*model.CommissionSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if s.commission != nil {
		return nil, errBadRequest("Commission settings already exist.")
	}
	s.commission = &model.CommissionSettings{
		ID:                            s.nextID(),
		CoordinatorPercentage:         in.CoordinatorPercentage,
		DistrictCoordinatorPercentage: in.DistrictCoordinatorPercentage,
		TeamLeaderPercentage:          in.TeamLeaderPercentage,
		FieldEmployeePercentage:       in.FieldEmployeePercentage,
		CreatedAt:                     s.now(),
	}
	out := *s.commission
	return &out, nil
}

// UpdateCommissionSettings overwrites the existing split record.
func (s *Server) UpdateCommissionSettings(_ context.Context, token string, in model.CommissionSettingsInput) (*model.CommissionSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if s.commission == nil {
		return nil, errNotFound("commission settings")
	}
	s.commission.CoordinatorPercentage = in.CoordinatorPercentage
	s.commission.DistrictCoordinatorPercentage = in.DistrictCoordinatorPercentage
	s.commission.TeamLeaderPercentage = in.TeamLeaderPercentage
	s.commission.FieldEmployeePercentage = in.FieldEmployeePercentage
	s.commission.UpdatedAt = timePtr(s.now())
	out := *s.commission
	return &out, nil
}

func (s *Server) findMain(id string) (model.MainCategory, bool) {
	for _, c := range s.mains {
		if c.ID == id {
			return c, true
		}
	}
	return model.MainCategory{}, false
}

func (s *Server) findSub(id string) (model.SubCategory, bool) {
	for _, c := range s.subs {
		if c.ID == id {
			return c, true
		}
	}
	return model.SubCategory{}, false
}

func (s *Server) findSubject(id string) (model.Subject, bool) {
	for _, subj := range s.subjects {
		if subj.ID == id {
			return subj, true
		}
	}
	return model.Subject{}, false
}

func (s *Server) findBoard(id string) (model.Board, bool) {
	for _, b := range s.boards {
		if b.ID == id {
			return b, true
		}
	}
	return model.Board{}, false
}

func (s *Server) findCourse(id string) (model.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

func categoryRef(c model.MainCategory) model.CategoryRef {
	return model.CategoryRef{ID: c.ID, Name: c.Name, Description: c.Description, Image: c.Image}
}

func subCategoryRef(c model.SubCategory) model.CategoryRef {
	return model.CategoryRef{ID: c.ID, Name: c.Name, Description: c.Description, Image: c.Image}
}

func planSubCategoryRef(c model.SubCategory) model.PlanSubCategoryRef {
	return model.PlanSubCategoryRef{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Image:        c.Image,
		MainCategory: c.MainCategory,
	}
}

func boardRefPtr(b model.Board) *model.BoardRef {
	return &model.BoardRef{ID: b.ID, Name: b.Name, Description: b.Description, Code: b.Code}
}

func subjectRefPtr(subj model.Subject) *model.SubjectRef {
	return &model.SubjectRef{ID: subj.ID, Title: subj.Title, Description: subj.Description, Thumbnail: subj.Thumbnail}
}

func courseRef(c model.Course) model.CourseRef {
	return model.CourseRef{ID: c.ID, Title: c.Title, Description: c.Description, Thumbnail: c.Thumbnail}
}
