package handler

import (
	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MembershipType: req.MembershipType,
	}
}

func toProfileInput(req profileRequest) ports.ProfileInput {
	return ports.ProfileInput{
		Bio:        req.Bio,
		Age:        req.Age,
		Gender:     req.Gender,
		LookingFor: req.LookingFor,
		Interests:  req.Interests,
		Location:   req.Location,
		Skills:     req.Skills,
	}
}

func toUpdateInput(req updateUserRequest) ports.UpdateUserInput {
	input := ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	}
	if req.Membership != nil {
		input.Membership = &ports.MembershipInput{
			Type:      req.Membership.Type,
			StartDate: req.Membership.StartDate,
		}
	}
	return input
}

// --- Service result → HTTP response ---

func toUserSummaries(summaries []ports.UserSummary) []userSummaryResponse {
	out := make([]userSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = userSummaryResponse{
			ID:         s.ID,
			Username:   s.Username,
			Email:      s.Email,
			Membership: s.Membership,
		}
	}
	return out
}

func toProfileView(view *ports.ProfileView) profileViewResponse {
	return profileViewResponse{
		Bio:           view.Profile.Bio,
		Age:           view.Profile.Age,
		Gender:        view.Profile.Gender,
		LookingFor:    view.Profile.LookingFor,
		Interests:     view.Profile.Interests,
		Location:      view.Profile.Location,
		Skills:        view.Profile.Skills,
		AverageRating: view.AverageRating,
		TotalRatings:  view.TotalRatings,
	}
}

func toUpdatedUser(u *domain.User) updatedUserResponse {
	return updatedUserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		Membership: u.Membership,
		UpdatedAt:  u.UpdatedAt,
	}
}
