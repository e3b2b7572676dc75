// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud implements server.Cloud on DynamoDB. It is optional: when
// the environment is not configured, New fails and the server runs Offline.
package cloud

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/RealBatu20/mathfunctiongenerator/server/cloud/db"
)

const awsProfile = "mathgen"

const updatePeriod = time.Minute

type Cloud struct {
	database *db.DynamoDBDatabase
	region   string
	stage    string
	ip       net.IP
}

// New reads REGION/STAGE from the environment and connects to DynamoDB.
func New() (*Cloud, error) {
	region := os.Getenv("REGION")
	stage := os.Getenv("STAGE")
	if region == "" || stage == "" {
		return nil, errors.New("REGION and STAGE not configured")
	}

	sess, err := getAWSSession(region)
	if err != nil {
		return nil, err
	}

	database, err := db.NewDynamoDBDatabase(sess, stage)
	if err != nil {
		return nil, err
	}

	ip, err := getPublicIP()
	if err != nil {
		return nil, err
	}

	return &Cloud{
		database: database,
		region:   region,
		stage:    stage,
		ip:       ip,
	}, nil
}

func (c *Cloud) String() string {
	return fmt.Sprintf("cloud %s/%s %s", c.region, c.stage, c.ip)
}

func (c *Cloud) UpdatePeriod() time.Duration {
	return updatePeriod
}

// UpdateServer refreshes this server's registration row. The TTL lets dead
// servers age out of the table on their own.
func (c *Cloud) UpdateServer(clients int) error {
	return c.database.UpdateServer(db.Server{
		Region:  c.region,
		IP:      c.ip,
		Clients: clients,
		TTL:     time.Now().Add(3 * updatePeriod).Unix(),
	})
}

// UpdateFormulaScores writes the best score seen per formula label.
func (c *Cloud) UpdateFormulaScores(scores map[string]int) error {
	for label, score := range scores {
		err := c.database.UpdateScore(db.Score{
			Label: label,
			Score: score,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func getAWSSession(region string) (*session.Session, error) {
	usr, osErr := user.Current()
	if osErr != nil {
		return nil, osErr
	}
	path := fmt.Sprintf("%s/.aws/credentials", usr.HomeDir)
	var creds *credentials.Credentials
	if _, statErr := os.Stat(path); statErr == nil {
		creds = credentials.NewSharedCredentials(path, awsProfile)
	} else {
		creds = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{Client: ec2metadata.New(session.New(aws.NewConfig()))})
	}
	return session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: creds,
	})
}

func getPublicIP() (net.IP, error) {
	resp, httpErr := http.Get("http://checkip.amazonaws.com")
	if httpErr != nil {
		return nil, httpErr
	}
	defer resp.Body.Close()
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, readErr
	}
	ipString := strings.TrimSuffix(string(body), "\n")
	ip := net.ParseIP(ipString)
	if ip == nil {
		return nil, errors.New("could not parse IP address '" + ipString + "'")
	}
	return ip, nil
}
