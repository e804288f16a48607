package mockapi

import (
	"context"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// seed populates a small but fully linked data set: every list page has
// rows, every detail page has content, and the dashboard tiles are non-zero.
func (s *Server) seed() {
	now := s.now()

	admin := model.User{
		ID:           s.nextID(),
		UserID:       "ADM0001",
		Email:        DefaultAdminEmail,
		MobileNumber: "9000000001",
		FirstName:    "Asha",
		LastName:     "Verma",
		Role:         "super_admin",
		IsActive:     true,
		CreatedAt:    now,
	}
	s.users = append(s.users, admin)
	s.passwords[admin.ID] = DefaultAdminPassword

	coordinator := model.User{
		ID:           s.nextID(),
		UserID:       "USR0001",
		Email:        "ravi.coordinator@adhyan.local",
		MobileNumber: "9000000002",
		FirstName:    "Ravi",
		LastName:     "Kumar",
		Role:         string(model.UserTypeCoordinator),
		District:     "Patna",
		IsActive:     true,
		CreatedAt:    now,
	}
	s.users = append(s.users, coordinator)
	s.passwords[coordinator.ID] = "coordinator123"

	// Seed through the public write paths so references stay consistent.
	// A throwaway token keeps checkToken happy during seeding.
	token := "seed"
	s.tokens[token] = admin.ID
	defer delete(s.tokens, token)
	ctx := context.Background()

	entrance, _ := s.CreateMainCategory(ctx, token, model.CategoryInput{
		Name:        "Entrance Exams",
		Description: "National level entrance exam preparation",
	}, nil)
	school, _ := s.CreateMainCategory(ctx, token, model.CategoryInput{
		Name:        "School Boards",
		Description: "Class 9-12 board exam preparation",
	}, nil)

	jee, _ := s.CreateSubCategory(ctx, token, model.SubCategoryInput{
		Name: "JEE", MainCategoryID: entrance.ID, Description: "Joint Entrance Examination",
	}, nil)
	neet, _ := s.CreateSubCategory(ctx, token, model.SubCategoryInput{
		Name: "NEET", MainCategoryID: entrance.ID, Description: "Medical entrance",
	}, nil)
	classX, _ := s.CreateSubCategory(ctx, token, model.SubCategoryInput{
		Name: "Class X", MainCategoryID: school.ID,
	}, nil)

	cbse, _ := s.CreateBoard(ctx, token, model.BoardInput{Name: "CBSE", Code: "CBSE", Description: "Central Board of Secondary Education"})
	s.CreateBoard(ctx, token, model.BoardInput{Name: "Bihar Board", Code: "BSEB"}) //nolint:errcheck // seed data

	physics, _ := s.CreateSubject(ctx, token, model.SubjectInput{
		Title: "Physics", MainCategoryID: entrance.ID, SubCategoryID: jee.ID,
		Description: "Mechanics, electromagnetism and modern physics",
	}, nil)
	s.CreateSubject(ctx, token, model.SubjectInput{ //nolint:errcheck // seed data
		Title: "Biology", MainCategoryID: entrance.ID, SubCategoryID: neet.ID,
	}, nil)
	s.CreateSubject(ctx, token, model.SubjectInput{ //nolint:errcheck // seed data
		Title: "Mathematics", MainCategoryID: school.ID, SubCategoryID: classX.ID, BoardID: cbse.ID,
	}, nil)

	order1, order2 := 1, 2
	s.CreateChapter(ctx, token, model.ChapterInput{ //nolint:errcheck // seed data
		Title: "Kinematics", SubjectID: physics.ID, Order: &order1,
		TextContent: "Motion in one and two dimensions.",
	}, nil, nil)
	s.CreateChapter(ctx, token, model.ChapterInput{ //nolint:errcheck // seed data
		Title: "Laws of Motion", SubjectID: physics.ID, Order: &order2,
	}, nil, nil)

	price := 499.0
	crash, _ := s.CreateCourse(ctx, token, model.CourseInput{
		Title: "JEE Crash Course", Price: &price,
		Description: "60 day revision sprint",
	}, nil)
	s.CreateCourseChapter(ctx, token, model.CourseChapterInput{ //nolint:errcheck // seed data
		CourseID: crash.ID, Title: "Orientation", Order: &order1,
		Text: "How to use this course.",
	}, nil, nil)

	s.CreatePlans(ctx, token, jee.ID, []model.PlanSpec{ //nolint:errcheck // seed data
		{Duration: model.PlanDurationOneMonth, Amount: 299},
		{Duration: model.PlanDurationSixMonths, Amount: 1299},
		{Duration: model.PlanDurationOneYear, Amount: 1999},
	})
	s.CreatePlans(ctx, token, neet.ID, []model.PlanSpec{ //nolint:errcheck // seed data
		{Duration: model.PlanDurationThreeMonths, Amount: 799},
	})

	s.CreateCommissionSettings(ctx, token, model.CommissionSettingsInput{ //nolint:errcheck // seed data
		CoordinatorPercentage:         10,
		DistrictCoordinatorPercentage: 5,
		TeamLeaderPercentage:          3,
		FieldEmployeePercentage:       2,
	})

	for i, title := range []string{"New JEE Batch", "NEET Scholarship Test", "Refer and Earn"} {
		ord := i + 1
		s.thumbnails = append(s.thumbnails, model.Thumbnail{
			ID:        s.nextID(),
			Title:     title,
			Image:     s.fileURL("thumbnail", "banner.jpg"),
			Order:     ord,
			IsActive:  true,
			CreatedAt: now,
		})
	}
}

// compile-time checks that the mock satisfies every consumer interface
var _ interface {
	Login(ctx context.Context, identifier, password string) (*apiclient.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Signup(ctx context.Context, in apiclient.SignupInput, picture *apiclient.FileUpload) (*model.User, error)
} = (*Server)(nil)
