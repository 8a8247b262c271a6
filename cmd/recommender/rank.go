package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daniel/course-recommender/internal/types"
)

var (
	rankCourses   string
	rankInterests string
	rankYear      int
	rankLimit     int
	rankConfig    string
	rankTarget    string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank opportunities for a set of courses",
	Long:  `Rank the candidate pool against a comma-separated list of enrolled courses and print the top results. With --target, also print the suggested learning path.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankCourses, "courses", "", "Comma-separated course names (required)")
	rankCmd.Flags().StringVar(&rankInterests, "interests", "", "Comma-separated interests")
	rankCmd.Flags().IntVar(&rankYear, "year", 2, "Current academic year")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 10, "Maximum results to print")
	rankCmd.Flags().StringVar(&rankConfig, "config", "", "Path to JSON config file")
	rankCmd.Flags().StringVar(&rankTarget, "target", "", "Target career for learning-path output")
	_ = rankCmd.MarkFlagRequired("courses")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(rankConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	engine, err := buildEngine(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	courses := parseCourseList(rankCourses)
	if len(courses) == 0 {
		return fmt.Errorf("no courses provided")
	}

	profile := types.UserProfile{
		Interests:   splitTrimmed(rankInterests),
		CurrentYear: rankYear,
	}

	results, err := engine.Recommend(ctx, courses, profile)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}
	if rankLimit > 0 && len(results) > rankLimit {
		results = results[:rankLimit]
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tTITLE\tPLATFORM\tLEVEL")
	for _, result := range results {
		fmt.Fprintf(tw, "%.3f\t%s\t%s\t%s\n",
			result.RelevanceScore, result.Title, result.Platform, result.Level)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if rankTarget != "" {
		names := make([]string, 0, len(courses))
		for _, course := range courses {
			names = append(names, course.Name)
		}
		path := engine.LearningPath(names, rankTarget)
		if len(path) == 0 {
			fmt.Fprintf(out, "\nNo learning path found towards %q\n", rankTarget)
		} else {
			fmt.Fprintf(out, "\nLearning path towards %q:\n  %s\n", rankTarget, strings.Join(path, " -> "))
		}
	}

	return nil
}

func parseCourseList(raw string) []types.CourseRecord {
	var courses []types.CourseRecord
	for _, name := range splitTrimmed(raw) {
		courses = append(courses, types.CourseRecord{Name: name})
	}
	return courses
}

func splitTrimmed(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
