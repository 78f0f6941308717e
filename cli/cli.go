// Package cli drives a ScoreboardSrvc from the contest's line-oriented
// command stream (ADDTEAM, START, SUBMIT, FLUSH, FREEZE, SCROLL,
// QUERY_RANKING, QUERY_SUBMISSION, END) and writes the judge's textual
// protocol.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/programme-lv/scoreboard/render"
	"github.com/programme-lv/scoreboard/scoreboard"
	"github.com/programme-lv/scoreboard/srvcerror"
)

type Runner struct {
	srvc   *scoreboard.ScoreboardSrvc
	out    *bufio.Writer
	logger *slog.Logger
}

func New(srvc *scoreboard.ScoreboardSrvc, out io.Writer) *Runner {
	return &Runner{
		srvc:   srvc,
		out:    bufio.NewWriter(out),
		logger: slog.Default().With("component", "cli"),
	}
}

// Run consumes the command stream until END or EOF.
func (r *Runner) Run(in io.Reader) error {
	defer r.out.Flush()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := r.Execute(line); quit {
			break
		}
	}
	return scanner.Err()
}

// Execute runs a single command line. It reports true once the END
// command has been processed.
func (r *Runner) Execute(line string) (quit bool) {
	defer r.out.Flush()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "ADDTEAM":
		if len(fields) >= 2 {
			r.addTeam(fields[1])
		}
	case "START":
		// START DURATION <minutes> PROBLEM <count>
		if len(fields) >= 5 {
			duration, _ := strconv.Atoi(fields[2])
			problems, _ := strconv.Atoi(fields[4])
			r.start(duration, problems)
		}
	case "SUBMIT":
		// SUBMIT <problem> BY <team> WITH <status> AT <minute>
		if len(fields) >= 8 {
			at, _ := strconv.Atoi(fields[7])
			r.submit(fields[1], fields[3], fields[5], at)
		}
	case "FLUSH":
		r.flush()
	case "FREEZE":
		r.freeze()
	case "SCROLL":
		r.scroll()
	case "QUERY_RANKING":
		if len(fields) >= 2 {
			r.queryRanking(fields[1])
		}
	case "QUERY_SUBMISSION":
		// QUERY_SUBMISSION <team> WHERE PROBLEM=<p> AND STATUS=<s>
		if len(fields) >= 6 {
			problem := strings.TrimPrefix(fields[3], "PROBLEM=")
			status := strings.TrimPrefix(fields[5], "STATUS=")
			r.querySubmission(fields[1], problem, status)
		}
	case "END":
		fmt.Fprintln(r.out, "[Info]Competition ends.")
		return true
	}
	return false
}

func (r *Runner) addTeam(name string) {
	err := r.srvc.RegisterTeam(name)
	switch errCode(err) {
	case "":
		fmt.Fprintln(r.out, "[Info]Add successfully.")
	case scoreboard.ErrCodeCompetitionStarted:
		fmt.Fprintln(r.out, "[Error]Add failed: competition has started.")
	case scoreboard.ErrCodeDuplicateTeam:
		fmt.Fprintln(r.out, "[Error]Add failed: duplicated team name.")
	}
}

func (r *Runner) start(durationMin, problemCount int) {
	if err := r.srvc.StartContest(durationMin, problemCount); err != nil {
		fmt.Fprintln(r.out, "[Error]Start failed: competition has started.")
		return
	}
	fmt.Fprintln(r.out, "[Info]Competition starts.")
}

func (r *Runner) submit(problem, team, status string, at int) {
	err := r.srvc.Submit(problem, team, scoreboard.ParseVerdict(status), at)
	if err != nil {
		// a well-formed feed never references unknown teams or problems
		r.logger.Warn("dropped submission",
			"team", team, "problem", problem, "error", err)
	}
}

func (r *Runner) flush() {
	snap := r.srvc.Flush()
	fmt.Fprintln(r.out, "[Info]Flush scoreboard.")
	r.printScoreboard(snap)
}

func (r *Runner) freeze() {
	if err := r.srvc.Freeze(); err != nil {
		fmt.Fprintln(r.out, "[Error]Freeze failed: scoreboard has been frozen.")
		return
	}
	fmt.Fprintln(r.out, "[Info]Freeze scoreboard.")
}

func (r *Runner) scroll() {
	res, err := r.srvc.Scroll()
	if err != nil {
		fmt.Fprintln(r.out, "[Error]Scroll failed: scoreboard has not been frozen.")
		return
	}
	fmt.Fprintln(r.out, "[Info]Scroll scoreboard.")
	r.printScoreboard(res.Before)
	for _, ch := range res.Changes {
		fmt.Fprintln(r.out, render.Change(ch))
	}
	r.printScoreboard(res.Final)
}

func (r *Runner) queryRanking(team string) {
	rank, stale, err := r.srvc.QueryRank(team)
	if err != nil {
		fmt.Fprintln(r.out, "[Error]Query ranking failed: cannot find the team.")
		return
	}
	fmt.Fprintln(r.out, "[Info]Complete query ranking.")
	if stale {
		fmt.Fprintln(r.out, "[Warning]Scoreboard is frozen. The ranking may be inaccurate until it were scrolled.")
	}
	fmt.Fprintf(r.out, "%s NOW AT RANKING %d\n", team, rank)
}

func (r *Runner) querySubmission(team, problem, status string) {
	filter := scoreboard.SubmissionFilter{}
	if problem != "ALL" {
		filter.Problem = &problem
	}
	if status != "ALL" {
		v := scoreboard.ParseVerdict(status)
		filter.Verdict = &v
	}

	sub, err := r.srvc.QuerySubmission(team, filter)
	if err != nil {
		fmt.Fprintln(r.out, "[Error]Query submission failed: cannot find the team.")
		return
	}
	fmt.Fprintln(r.out, "[Info]Complete query submission.")
	if sub == nil {
		fmt.Fprintln(r.out, "Cannot find any submission.")
		return
	}
	fmt.Fprintln(r.out, render.Submission(*sub))
}

func (r *Runner) printScoreboard(snap scoreboard.Snapshot) {
	for _, line := range render.Scoreboard(snap) {
		fmt.Fprintln(r.out, line)
	}
}

func errCode(err error) string {
	if err == nil {
		return ""
	}
	var se *srvcerror.Error
	if errors.As(err, &se) {
		return se.ErrorCode()
	}
	return srvcerror.ErrCodeInternalServerError
}
